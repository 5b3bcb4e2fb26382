package repository

import "errors"

// Sentinel errors returned by the employee repository. Callers match them
// with errors.Is; the underlying pgx error stays wrapped where one exists.
var (
	// ErrInvalidArgument indicates malformed construction input, such as a
	// blank connection string or a nil database handle.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a lookup by primary key matched no row.
	ErrNotFound = errors.New("employee not found")

	// ErrOperationFailed indicates a write operation failed at the database,
	// or an update matched no row where exactly one was expected.
	ErrOperationFailed = errors.New("operation failed")
)
