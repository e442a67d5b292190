package repository

import (
	"context"
	"time"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// LedgerOps are the balance and inventory operations available both on the
// pool and inside a transaction.
type LedgerOps interface {
	// GetAccount returns a zero-valued account for unknown users.
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	// AddBalance applies delta, flooring the result at zero, and returns the new balance.
	AddBalance(ctx context.Context, userID string, delta int64) (int64, error)
	// TryDebit subtracts amount only if the balance covers it.
	TryDebit(ctx context.Context, userID string, amount int64) (bool, error)
	AddAffinity(ctx context.Context, userID string, delta int64) error

	GetItemAmount(ctx context.Context, userID, itemName string) (int, error)
	AddItem(ctx context.Context, userID, itemName string, amount int) error
	RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error)
	// RemoveItems deducts every entry or none of them.
	RemoveItems(ctx context.Context, userID string, items map[string]int) (bool, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error)
}

// Ledger defines persistence for balances and inventories
type Ledger interface {
	LedgerOps
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is a ledger transaction
type LedgerTx interface {
	Tx
	LedgerOps
	GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)
	SetDaily(ctx context.Context, userID string, streak int, day time.Time) error
	// TransferBalance debits from and credits to, or changes nothing.
	TransferBalance(ctx context.Context, from, to string, amount int64) (bool, error)
}
