// Package dbtest starts a throwaway Postgres for repository integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"storefront-backend/internal/infrastructure/database"
)

// StartPostgres chạy container postgres, apply migrations và trả về pool.
// Bị skip khi chạy với -short
func StartPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in -short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &database.DBConfig{
		Host:       host,
		Port:       port.Int(),
		Username:   "testuser",
		Password:   "testpass",
		DBName:     "storefront_test",
		SSLMode:    "disable",
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}

	require.NoError(t, database.RunMigrations(cfg))

	db := database.NewPostgresDB(cfg)
	require.NoError(t, db.Connect(ctx))
	t.Cleanup(db.Close)

	return db.Pool
}
