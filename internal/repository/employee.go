package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HovsepH/northwind-employee-store/internal/models"
	"github.com/jackc/pgx/v5"
)

// employeeColumns is the single source of truth for the column order. The
// scan and argument helpers below iterate the same order, so adding a column
// is a three-line change instead of five hand-written statements.
const employeeColumns = `employee_id, first_name, last_name, title, title_of_courtesy, ` +
	`birth_date, hire_date, address, city, region, postal_code, country, ` +
	`home_phone, extension, notes, reports_to, photo_path`

// scanDest returns scan destinations matching employeeColumns.
func scanDest(emp *models.Employee) []any {
	return []any{
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Title, &emp.TitleOfCourtesy,
		&emp.BirthDate, &emp.HireDate, &emp.Address, &emp.City, &emp.Region,
		&emp.PostalCode, &emp.Country, &emp.HomePhone, &emp.Extension,
		&emp.Notes, &emp.ReportsTo, &emp.PhotoPath,
	}
}

// writeArgs returns bind arguments for every non-key column, in
// employeeColumns order. Nil pointers bind as SQL NULL.
func writeArgs(emp models.Employee) []any {
	return []any{
		emp.FirstName, emp.LastName, emp.Title, emp.TitleOfCourtesy,
		emp.BirthDate, emp.HireDate, emp.Address, emp.City, emp.Region,
		emp.PostalCode, emp.Country, emp.HomePhone, emp.Extension,
		emp.Notes, emp.ReportsTo, emp.PhotoPath,
	}
}

// ListEmployees returns every employee row in result-set order.
// An empty table yields an empty, non-nil slice.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `SELECT ` + employeeColumns + ` FROM employees`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var emp models.Employee
		if err = rows.Scan(scanDest(&emp)...); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// A missing row is reported as ErrNotFound.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(scanDest(&result)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// AddEmployee inserts a new employee and returns the engine-generated ID.
// A caller-populated ID on the value is ignored; the sequence is authoritative.
func (r *Repository) AddEmployee(ctx context.Context, employee models.Employee) (int, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("add_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (first_name, last_name, title, title_of_courtesy,
			birth_date, hire_date, address, city, region, postal_code, country,
			home_phone, extension, notes, reports_to, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING employee_id;
	`

	var identifier int
	err := r.db.QueryRow(ctx, query, writeArgs(employee)...).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert employee: %w", ErrOperationFailed, err)
	}

	return identifier, nil
}

// UpdateEmployee rewrites the full row identified by employee.ID.
// Updating an ID with no matching row is reported as ErrOperationFailed.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET employee_id = $1, first_name = $2, last_name = $3, title = $4, title_of_courtesy = $5,
			birth_date = $6, hire_date = $7, address = $8, city = $9, region = $10,
			postal_code = $11, country = $12, home_phone = $13, extension = $14,
			notes = $15, reports_to = $16, photo_path = $17
		WHERE employee_id = $1;
	`

	args := append([]any{employee.ID}, writeArgs(employee)...)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: failed to update employee: %w", ErrOperationFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %d is not updated", ErrOperationFailed, employee.ID)
	}

	return nil
}

// RemoveEmployee deletes the row identified by the given ID. Deleting an ID
// with no matching row is not an error.
func (r *Repository) RemoveEmployee(ctx context.Context, identifier int) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("remove_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE employee_id = $1;`

	_, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("%w: failed to delete employee: %w", ErrOperationFailed, err)
	}

	return nil
}
