package cooldown_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/cooldown"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/testing/pgtest"
)

func TestCooldownError(t *testing.T) {
	err := domain.CooldownError{Action: "mine", Remaining: 2*time.Minute + 30*time.Second}

	assert.True(t, errors.Is(err, domain.ErrOnCooldown))
	assert.Contains(t, err.Error(), "mine")
	assert.Contains(t, err.Error(), "2m30s")

	var cdErr domain.CooldownError
	require.True(t, errors.As(error(err), &cdErr))
	assert.Equal(t, "mine", cdErr.Action)
}

func TestPostgresService_Integration(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()

	svc := cooldown.NewPostgresService(pool, cooldown.Config{
		Windows: map[string]time.Duration{domain.ActionMine: time.Hour},
	})

	t.Run("configured window", func(t *testing.T) {
		assert.Equal(t, time.Hour, svc.Window(domain.ActionMine))
		assert.Equal(t, cooldown.DefaultWindow, svc.Window(domain.ActionFish))
	})

	t.Run("check, stamp, reset", func(t *testing.T) {
		remaining, err := svc.CheckCooldown(ctx, "cd-user-1", domain.ActionMine, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		require.NoError(t, svc.UpdateCooldown(ctx, "cd-user-1", domain.ActionMine))

		remaining, err = svc.CheckCooldown(ctx, "cd-user-1", domain.ActionMine, time.Hour)
		require.NoError(t, err)
		assert.Greater(t, remaining, 59*time.Minute)

		require.NoError(t, svc.ResetCooldown(ctx, "cd-user-1", domain.ActionMine))
		remaining, err = svc.CheckCooldown(ctx, "cd-user-1", domain.ActionMine, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("enforce runs fn once under concurrency", func(t *testing.T) {
		var runs atomic.Int32
		var onCooldown atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := svc.EnforceCooldown(ctx, "cd-user-2", domain.ActionMine, func() error {
					runs.Add(1)
					return nil
				})
				if errors.Is(err, domain.ErrOnCooldown) {
					onCooldown.Add(1)
				} else if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), runs.Load())
		assert.Equal(t, int32(9), onCooldown.Load())
	})

	t.Run("failed fn does not stamp", func(t *testing.T) {
		boom := errors.New("boom")
		err := svc.EnforceCooldown(ctx, "cd-user-3", domain.ActionMine, func() error { return boom })
		assert.ErrorIs(t, err, boom)

		remaining, err := svc.CheckCooldown(ctx, "cd-user-3", domain.ActionMine, time.Hour)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("dev mode bypasses", func(t *testing.T) {
		dev := cooldown.NewPostgresService(pool, cooldown.Config{DevMode: true})
		for i := 0; i < 2; i++ {
			require.NoError(t, dev.EnforceCooldown(ctx, "cd-user-4", domain.ActionFish, func() error { return nil }))
		}
	})
}
