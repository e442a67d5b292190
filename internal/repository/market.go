package repository

import (
	"context"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// Market defines persistence for the item market and the stock market
type Market interface {
	// GetMarketEntry returns nil when the item has never been priced.
	GetMarketEntry(ctx context.Context, itemName string) (*domain.MarketEntry, error)
	// SeedMarketEntry inserts the item at price with a stable trend unless a row
	// already exists, and returns the stored entry.
	SeedMarketEntry(ctx context.Context, itemName string, price int64) (*domain.MarketEntry, error)
	// SaveMarketEntry upserts the entry and appends a history point.
	SaveMarketEntry(ctx context.Context, entry domain.MarketEntry) error
	ListMarketEntries(ctx context.Context) ([]domain.MarketEntry, error)
	// GetPriceHistory returns the latest limit points, oldest first.
	GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error)

	// InitStocks upserts name and volatility of each stock, keeping live prices.
	InitStocks(ctx context.Context, stocks []domain.Stock) error
	GetStock(ctx context.Context, stockID string) (*domain.Stock, error)
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	// UpdateStockPrice shifts price into previous_price and appends history.
	UpdateStockPrice(ctx context.Context, stockID string, price int64) error
	GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error)

	GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error)
	// BuyStock returns false when the balance does not cover amount*price.
	BuyStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error)
	// SellStock returns false when the holding is smaller than amount.
	SellStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error)
	// SellItems returns false when the inventory does not hold amount.
	SellItems(ctx context.Context, userID, itemName string, amount int, unitPrice int64) (bool, error)
}
