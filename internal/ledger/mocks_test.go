package ledger

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

// ledgerOpsMock implements repository.LedgerOps
type ledgerOpsMock struct {
	mock.Mock
}

func (m *ledgerOpsMock) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *ledgerOpsMock) AddBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ledgerOpsMock) TryDebit(ctx context.Context, userID string, amount int64) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *ledgerOpsMock) AddAffinity(ctx context.Context, userID string, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *ledgerOpsMock) GetItemAmount(ctx context.Context, userID, itemName string) (int, error) {
	args := m.Called(ctx, userID, itemName)
	return args.Int(0), args.Error(1)
}

func (m *ledgerOpsMock) AddItem(ctx context.Context, userID, itemName string, amount int) error {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Error(0)
}

func (m *ledgerOpsMock) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Bool(0), args.Error(1)
}

func (m *ledgerOpsMock) RemoveItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	args := m.Called(ctx, userID, items)
	return args.Bool(0), args.Error(1)
}

func (m *ledgerOpsMock) GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventorySlot), args.Error(1)
}

// MockRepository implements repository.Ledger for testing
type MockRepository struct {
	ledgerOpsMock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockTx implements repository.LedgerTx for testing
type MockTx struct {
	ledgerOpsMock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) SetDaily(ctx context.Context, userID string, streak int, day time.Time) error {
	args := m.Called(ctx, userID, streak, day)
	return args.Error(0)
}

func (m *MockTx) TransferBalance(ctx context.Context, from, to string, amount int64) (bool, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Bool(0), args.Error(1)
}

// MockCooldown implements cooldown.Service for testing
type MockCooldown struct {
	mock.Mock
}

func (m *MockCooldown) CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (time.Duration, error) {
	args := m.Called(ctx, userID, action, window)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockCooldown) UpdateCooldown(ctx context.Context, userID, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockCooldown) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	args := m.Called(ctx, userID, action, fn)
	if args.Bool(1) {
		if err := fn(); err != nil {
			return err
		}
	}
	return args.Error(0)
}

func (m *MockCooldown) ResetCooldown(ctx context.Context, userID, action string) error {
	args := m.Called(ctx, userID, action)
	return args.Error(0)
}

func (m *MockCooldown) Window(action string) time.Duration {
	args := m.Called(action)
	return args.Get(0).(time.Duration)
}
