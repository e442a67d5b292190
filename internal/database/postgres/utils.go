package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// unitOfWork is embedded in every repository transaction. The ledger
// primitives run on the same pgx.Tx as the caller's domain writes.
type unitOfWork struct {
	tx pgx.Tx
	ledgerQueries
}

func begin(ctx context.Context, db *pgxpool.Pool) (unitOfWork, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return unitOfWork{}, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return unitOfWork{tx: tx, ledgerQueries: ledgerQueries{q: tx}}, nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	return u.tx.Rollback(ctx)
}

// withTx runs fn in a transaction and commits when fn returns nil.
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	uow, err := begin(ctx, db)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, &uow)

	if err := fn(uow.tx); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
