package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/HovsepH/northwind-employee-store/internal/lib/logger/sl"
	"github.com/HovsepH/northwind-employee-store/internal/metrics"
	"github.com/HovsepH/northwind-employee-store/internal/models"
	"github.com/HovsepH/northwind-employee-store/internal/repository"
)

// Service is the application-facing surface over the employee repository.
// It adds operation-scoped logging, argument validation and outcome metrics;
// the persistence semantics live in the repository underneath.
type Service struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewService(log *slog.Logger, repo repository.EmployeeRepoIface, mts *metrics.Metrics) *Service {
	return &Service{log: log, repo: repo, metrics: mts}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "directory"),
	)
}

func (s *Service) observe(opn string, err error) {
	if err != nil {
		s.metrics.Operations.WithLabelValues(opn, "failure").Inc()
		s.metrics.LastFailure.Set(float64(time.Now().Unix()))
		return
	}
	s.metrics.Operations.WithLabelValues(opn, "success").Inc()
}

// List returns every employee in the directory.
func (s *Service) List(ctx context.Context) ([]models.Employee, error) {
	const opn = "list_employees"
	log := s.initLogger(opn)

	employees, err := s.repo.ListEmployees(ctx)
	s.observe(opn, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	log.DebugContext(ctx, "Listed employees", "count", len(employees))
	return employees, nil
}

// Get returns the employee with the given ID.
func (s *Service) Get(ctx context.Context, identifier int) (models.Employee, error) {
	const opn = "get_employee"
	log := s.initLogger(opn)

	if identifier < 0 {
		s.observe(opn, repository.ErrInvalidArgument)
		return models.Employee{}, fmt.Errorf("%w: employee id %d is negative",
			repository.ErrInvalidArgument, identifier)
	}

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	s.observe(opn, err)
	if err != nil {
		log.DebugContext(ctx, "Failed to get employee", "id", identifier, sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	return employee, nil
}

// Add inserts a new employee and returns the assigned ID.
func (s *Service) Add(ctx context.Context, employee models.Employee) (int, error) {
	const opn = "add_employee"
	log := s.initLogger(opn)

	identifier, err := s.repo.AddEmployee(ctx, employee)
	s.observe(opn, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to add employee", sl.Err(err))
		return 0, fmt.Errorf("failed to add employee: %w", err)
	}

	log.InfoContext(ctx, "Employee added", "id", identifier)
	return identifier, nil
}

// Update rewrites an existing employee row.
func (s *Service) Update(ctx context.Context, employee models.Employee) error {
	const opn = "update_employee"
	log := s.initLogger(opn)

	if employee.ID < 0 {
		s.observe(opn, repository.ErrInvalidArgument)
		return fmt.Errorf("%w: employee id %d is negative", repository.ErrInvalidArgument, employee.ID)
	}

	err := s.repo.UpdateEmployee(ctx, employee)
	s.observe(opn, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to update employee", "id", employee.ID, sl.Err(err))
		return fmt.Errorf("failed to update employee %d: %w", employee.ID, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", employee.ID)
	return nil
}

// Remove deletes the employee with the given ID. Removing an unknown ID
// is a no-op, matching the repository contract.
func (s *Service) Remove(ctx context.Context, identifier int) error {
	const opn = "remove_employee"
	log := s.initLogger(opn)

	if identifier < 0 {
		s.observe(opn, repository.ErrInvalidArgument)
		return fmt.Errorf("%w: employee id %d is negative", repository.ErrInvalidArgument, identifier)
	}

	err := s.repo.RemoveEmployee(ctx, identifier)
	s.observe(opn, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to remove employee", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to remove employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee removed", "id", identifier)
	return nil
}
