package repository

import (
	"context"
	"fmt"

	"github.com/HovsepH/northwind-employee-store/internal/metrics"
	"github.com/HovsepH/northwind-employee-store/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	AddEmployee(ctx context.Context, employee models.Employee) (int, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	RemoveEmployee(ctx context.Context, identifier int) error
}

// NewEmployeeRepository creates an employee repository on top of an open
// database handle. Both inputs are required.
func NewEmployeeRepository(db Database, mts *metrics.Metrics) (EmployeeRepoIface, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: database handle is nil", ErrInvalidArgument)
	}
	if mts == nil {
		return nil, fmt.Errorf("%w: metrics is nil", ErrInvalidArgument)
	}

	return &Repository{db: db, metrics: mts}, nil
}
