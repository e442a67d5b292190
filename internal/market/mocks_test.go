package market

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// MockRepository implements repository.Market for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMarketEntry(ctx context.Context, itemName string) (*domain.MarketEntry, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketEntry), args.Error(1)
}

func (m *MockRepository) SeedMarketEntry(ctx context.Context, itemName string, price int64) (*domain.MarketEntry, error) {
	args := m.Called(ctx, itemName, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketEntry), args.Error(1)
}

func (m *MockRepository) SaveMarketEntry(ctx context.Context, entry domain.MarketEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) ListMarketEntries(ctx context.Context) ([]domain.MarketEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketEntry), args.Error(1)
}

func (m *MockRepository) GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, itemName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockRepository) InitStocks(ctx context.Context, stocks []domain.Stock) error {
	args := m.Called(ctx, stocks)
	return args.Error(0)
}

func (m *MockRepository) GetStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	args := m.Called(ctx, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockRepository) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func (m *MockRepository) UpdateStockPrice(ctx context.Context, stockID string, price int64) error {
	args := m.Called(ctx, stockID, price)
	return args.Error(0)
}

func (m *MockRepository) GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, stockID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockRepository) GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockHolding), args.Error(1)
}

func (m *MockRepository) BuyStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error) {
	args := m.Called(ctx, userID, stockID, amount, price)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SellStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error) {
	args := m.Called(ctx, userID, stockID, amount, price)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SellItems(ctx context.Context, userID, itemName string, amount int, unitPrice int64) (bool, error) {
	args := m.Called(ctx, userID, itemName, amount, unitPrice)
	return args.Bool(0), args.Error(1)
}
