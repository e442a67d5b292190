package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

type postgresBackend struct {
	db    *pgxpool.Pool
	cfg   Config
	clock func() time.Time
}

// NewPostgresService stores marks in the user_cooldowns table.
func NewPostgresService(db *pgxpool.Pool, cfg Config) Service {
	return &postgresBackend{db: db, cfg: cfg, clock: time.Now}
}

func (b *postgresBackend) Window(action string) time.Duration {
	return b.cfg.Window(action)
}

func (b *postgresBackend) CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (time.Duration, error) {
	if b.cfg.DevMode {
		return 0, nil
	}
	last, err := readMark(ctx, b.db, userID, action)
	if err != nil {
		return 0, err
	}
	return remaining(b.clock(), last, window), nil
}

func (b *postgresBackend) UpdateCooldown(ctx context.Context, userID, action string) error {
	return stampMark(ctx, b.db, userID, action, b.clock())
}

func (b *postgresBackend) ResetCooldown(ctx context.Context, userID, action string) error {
	if _, err := b.db.Exec(ctx, sqlDeleteMark, userID, action); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgClearMarkFailed, err)
	}
	return nil
}

// EnforceCooldown serializes callers on a transaction-scoped advisory lock for
// (userID, action), rechecks the mark, runs fn and stamps the mark. The lock
// is released on commit or rollback, so a failed fn leaves no mark.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	log := logger.FromContext(ctx).With("user_id", userID, "action", action)

	if b.cfg.DevMode {
		log.Debug(LogMsgDevModeBypass)
		if err := fn(); err != nil {
			return err
		}
		return b.UpdateCooldown(ctx, userID, action)
	}

	window := b.cfg.Window(action)
	err := pgx.BeginFunc(ctx, b.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlLockMark, userID, action); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgLockMarkFailed, err)
		}
		last, err := readMark(ctx, tx, userID, action)
		if err != nil {
			return err
		}
		if left := remaining(b.clock(), last, window); left > 0 {
			log.Debug(LogMsgLostRace, "remaining", left)
			return domain.CooldownError{Action: action, Remaining: left}
		}
		if err := fn(); err != nil {
			return err
		}
		return stampMark(ctx, tx, userID, action, b.clock())
	})
	if err != nil {
		return err
	}

	log.Debug(LogMsgCooldownEnforced)
	return nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func readMark(ctx context.Context, q querier, userID, action string) (*time.Time, error) {
	var last time.Time
	err := q.QueryRow(ctx, sqlSelectMark, userID, action).Scan(&last)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%s: %w", ErrMsgReadMarkFailed, err)
	}
	return &last, nil
}

func stampMark(ctx context.Context, q querier, userID, action string, at time.Time) error {
	if _, err := q.Exec(ctx, sqlStampMark, userID, action, at); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgStampMarkFailed, err)
	}
	return nil
}
