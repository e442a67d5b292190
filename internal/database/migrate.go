package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/JellyBot_Go/migrations"
)

// Migrate runs the embedded goose migrations in the given direction.
// "down" rolls back the most recent migration only.
func Migrate(ctx context.Context, pool *pgxpool.Pool, direction string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	log := slog.Default()

	switch direction {
	case DirectionUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
		if len(results) == 0 {
			log.Info(LogMsgNoPendingMigrations)
		}
		for _, r := range results {
			log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "direction", r.Direction, "duration", r.Duration)
		}
	case DirectionDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "direction", r.Direction, "duration", r.Duration)
	case DirectionStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
		}
		for _, s := range statuses {
			log.Info(LogMsgMigrationStatus, "version", s.Source.Version, "path", s.Source.Path, "state", s.State, "applied_at", s.AppliedAt)
		}
	default:
		return fmt.Errorf(ErrMsgUnknownMigrationDirecton, direction)
	}
	return nil
}
