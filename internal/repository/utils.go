package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/JellyBot_Go/internal/logger"
)

// Tx is the commit/rollback half of a unit of work. LedgerTx, DungeonTx and
// ProgressionTx embed it next to their domain operations.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// LogMsgRollbackFailed is logged when a deferred rollback fails for a reason
// other than the transaction already being finished.
const LogMsgRollbackFailed = "Failed to rollback transaction"

// SafeRollback is deferred after Begin. It is a no-op once Commit succeeded.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}
