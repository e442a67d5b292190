// Package repotest holds testify mocks shared by service tests.
package repotest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// LedgerOps is a testify mock of repository.LedgerOps. Embed it in
// repository and transaction mocks.
type LedgerOps struct {
	mock.Mock
}

func (m *LedgerOps) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *LedgerOps) AddBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LedgerOps) TryDebit(ctx context.Context, userID string, amount int64) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *LedgerOps) AddAffinity(ctx context.Context, userID string, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *LedgerOps) GetItemAmount(ctx context.Context, userID, itemName string) (int, error) {
	args := m.Called(ctx, userID, itemName)
	return args.Int(0), args.Error(1)
}

func (m *LedgerOps) AddItem(ctx context.Context, userID, itemName string, amount int) error {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Error(0)
}

func (m *LedgerOps) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Bool(0), args.Error(1)
}

func (m *LedgerOps) RemoveItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	args := m.Called(ctx, userID, items)
	return args.Bool(0), args.Error(1)
}

func (m *LedgerOps) GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventorySlot), args.Error(1)
}

// TxOps is LedgerOps plus Commit and Rollback. Embed it in transaction mocks.
type TxOps struct {
	LedgerOps
}

func (m *TxOps) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *TxOps) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
