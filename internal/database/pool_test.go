package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/database"
	"github.com/osse101/JellyBot_Go/internal/testing/leaktest"
	"github.com/osse101/JellyBot_Go/internal/testing/pgtest"
)

func TestNewPool_RejectsBadConnString(t *testing.T) {
	_, err := database.NewPool(context.Background(), "not a url ://", 4, time.Minute, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), database.ErrMsgFailedToParseConnString)
}

func TestNewPool_GivesUpWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	// Nothing listens on port 1.
	_, err := database.NewPool(ctx, "postgres://u:p@127.0.0.1:1/none?connect_timeout=1", 2, time.Minute, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), database.ErrMsgFailedToPingDatabase)
}

func TestPool_ConcurrentLedgerReads(t *testing.T) {
	pool := pgtest.Start(t)
	checker := leaktest.NewGoroutineChecker(t)

	ctx := context.Background()
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n int
			errs <- pool.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&n)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Zero(t, pool.Stat().AcquiredConns(), "every connection should be back in the pool")
	checker.Check(2)
}

func TestMigrate_DownAndUpAgain(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx, pool, database.DirectionStatus))
	require.NoError(t, database.Migrate(ctx, pool, database.DirectionUp), "re-running up is a no-op")

	require.NoError(t, database.Migrate(ctx, pool, database.DirectionDown))
	var exists bool
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('dungeon_sessions') IS NOT NULL").Scan(&exists))
	assert.False(t, exists, "latest migration should be rolled back")

	require.NoError(t, database.Migrate(ctx, pool, database.DirectionUp))
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('dungeon_sessions') IS NOT NULL").Scan(&exists))
	assert.True(t, exists)
}

func TestMigrate_UnknownDirection(t *testing.T) {
	pool := pgtest.Start(t)
	err := database.Migrate(context.Background(), pool, "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}
