// Package pgtest gives integration tests a migrated PostgreSQL database.
//
// One container is started per test binary and reused. Every Start call gets
// its own pool and an emptied schema, so tests in a package must not run in
// parallel against it.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/JellyBot_Go/internal/database"
)

const (
	image          = "postgres:16-alpine"
	startupTimeout = 60 * time.Second
	poolMaxConns   = 10
)

var container struct {
	once    sync.Once
	connStr string
	err     error
}

// Start returns a pool on an empty, fully migrated database. The test is
// skipped in -short mode or when no container runtime is available.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	container.once.Do(func() {
		container.connStr, container.err = boot()
	})
	if container.err != nil {
		t.Skipf("integration test skipped, no database: %v", container.err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, container.connStr, poolMaxConns, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := truncateAll(ctx, pool); err != nil {
		t.Fatalf("reset database: %v", err)
	}
	return pool
}

// boot starts the container and applies migrations once. testcontainers'
// reaper removes the container when the test binary exits.
func boot() (connStr string, err error) {
	defer func() {
		// testcontainers panics when no Docker socket can be found.
		if r := recover(); r != nil {
			err = fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()

	ctx := context.Background()
	pg, err := postgres.Run(ctx, image,
		postgres.WithDatabase("jellybot_test"),
		postgres.WithUsername("jellybot"),
		postgres.WithPassword("jellybot"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", err
	}

	connStr, err = pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", err
	}

	pool, err := database.NewPool(ctx, connStr, 2, time.Minute, time.Minute)
	if err != nil {
		return "", err
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool, database.DirectionUp); err != nil {
		return "", err
	}
	return connStr, nil
}

// truncateAll empties every application table, leaving goose's bookkeeping.
func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	rows, err := pool.Query(ctx, `
		SELECT quote_ident(tablename) FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'goose_db_version'`)
	if err != nil {
		return err
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil || len(tables) == 0 {
		return err
	}
	_, err = pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}
