package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/HovsepH/northwind-employee-store/internal/metrics"
	"github.com/HovsepH/northwind-employee-store/internal/models"
	"github.com/HovsepH/northwind-employee-store/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEmployeeLifecycle_Integration runs the full CRUD scenario against a real
// PostgreSQL instance: add, read back with NULLs intact, list, update, remove.
func TestEmployeeLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("northwind"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	migrationDB := stdlib.OpenDBFromPool(pool)
	require.NoError(t, goose.Up(migrationDB, "../../migrations"))

	repo, err := repository.NewEmployeeRepository(pool, metrics.NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	// Empty table lists as an empty slice.
	employees, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	birth := time.Date(1948, 12, 8, 0, 0, 0, 0, time.UTC)
	nancy := models.Employee{
		FirstName: strPtr("Nancy"),
		LastName:  strPtr("Davolio"),
		BirthDate: timePtr(birth),
		City:      strPtr("Seattle"),
	}

	identifier, err := repo.AddEmployee(ctx, nancy)
	require.NoError(t, err)
	assert.Positive(t, identifier)

	// NULLs survive the round-trip untouched.
	fetched, err := repo.GetEmployeeByID(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, identifier, fetched.ID)
	assert.Equal(t, "Nancy", *fetched.FirstName)
	assert.Equal(t, "Davolio", *fetched.LastName)
	require.NotNil(t, fetched.BirthDate)
	assert.True(t, birth.Equal(*fetched.BirthDate), "birth date mismatch: %v", fetched.BirthDate)
	assert.Nil(t, fetched.Title)
	assert.Nil(t, fetched.ReportsTo)
	assert.Nil(t, fetched.Notes)

	employees, err = repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, fetched, employees[0])

	// Full-row update, including setting a previously NULL column.
	fetched.LastName = strPtr("Fuller")
	fetched.Title = strPtr("Vice President, Sales")
	require.NoError(t, repo.UpdateEmployee(ctx, fetched))

	updated, err := repo.GetEmployeeByID(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, "Fuller", *updated.LastName)
	assert.Equal(t, "Vice President, Sales", *updated.Title)

	// Updating a missing row fails; the table stays unchanged.
	missing := updated
	missing.ID = identifier + 1000
	err = repo.UpdateEmployee(ctx, missing)
	require.ErrorIs(t, err, repository.ErrOperationFailed)

	// Removing a missing row is a no-op.
	require.NoError(t, repo.RemoveEmployee(ctx, identifier+1000))

	require.NoError(t, repo.RemoveEmployee(ctx, identifier))

	_, err = repo.GetEmployeeByID(ctx, identifier)
	require.ErrorIs(t, err, repository.ErrNotFound)

	employees, err = repo.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}
