package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// Service is the simulated item and stock market.
type Service interface {
	// GetCurrentMarketPrice returns the live price of an item, seeding it at
	// fallbackBase the first time it is asked for.
	GetCurrentMarketPrice(ctx context.Context, itemName string, fallbackBase int64) (domain.PriceQuote, error)
	// GetPrice is GetCurrentMarketPrice with the catalog base price.
	GetPrice(ctx context.Context, itemName string) (domain.PriceQuote, error)
	GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error)
	GetMarketStatus(ctx context.Context) ([]domain.MarketEntry, error)

	InitStocks(ctx context.Context) error
	GetAllStocks(ctx context.Context) ([]domain.Stock, error)
	GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error)
	GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error)
	// TradeStock trades at the given unit price.
	TradeStock(ctx context.Context, userID, stockID string, amount, price int64, isBuy bool) (domain.TradeResult, error)
	// TradeAtMarket trades at the stock's current price.
	TradeAtMarket(ctx context.Context, userID, stockID string, amount int64, isBuy bool) (domain.TradeResult, error)

	SellCollectible(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error)
	// SellItem sells a collectible or buys back a shop consumable.
	SellItem(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error)

	// RunTick moves every collectible and stock one step.
	RunTick(ctx context.Context) (domain.TickSummary, error)
}

// Config tunes the quote cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo    repository.Market
	catalog *item.Catalog
	bus     event.Bus
	cache   *priceCache
	printer *message.Printer
	rnd     func() float64
	normal  func() float64
	now     func() time.Time
}

// NewService creates a new market service. bus may be nil.
func NewService(repo repository.Market, catalog *item.Catalog, bus event.Bus, config Config) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		bus:     bus,
		cache:   newPriceCache(config.CacheSize, config.CacheTTL),
		printer: message.NewPrinter(language.Korean),
		rnd:     utils.RandomFloat,
		normal:  utils.RandomNormal,
		now:     time.Now,
	}
}

func storageFailure(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStorageFailure, "op", op, "error", err)
	return domain.StorageError(op, err)
}

func quoteOf(e *domain.MarketEntry) domain.PriceQuote {
	return domain.PriceQuote{Price: e.CurrentPrice, Trend: e.Trend, Symbol: e.Trend.Symbol()}
}

func stableQuote(price int64) domain.PriceQuote {
	return domain.PriceQuote{Price: price, Trend: domain.TrendStable, Symbol: domain.TrendStable.Symbol()}
}

func (s *service) GetCurrentMarketPrice(ctx context.Context, itemName string, fallbackBase int64) (domain.PriceQuote, error) {
	if q, ok := s.cache.Get(itemName); ok {
		return q, nil
	}

	entry, err := s.repo.GetMarketEntry(ctx, itemName)
	if err != nil {
		return stableQuote(fallbackBase), storageFailure(ctx, ErrMsgGetPriceFailed, err)
	}
	if entry == nil {
		entry, err = s.repo.SeedMarketEntry(ctx, itemName, fallbackBase)
		if err != nil {
			return stableQuote(fallbackBase), storageFailure(ctx, ErrMsgGetPriceFailed, err)
		}
	}

	q := quoteOf(entry)
	s.cache.Set(itemName, q)
	return q, nil
}

func (s *service) GetPrice(ctx context.Context, itemName string) (domain.PriceQuote, error) {
	base, ok := s.catalog.BasePrice(itemName)
	if !ok {
		return domain.PriceQuote{}, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrItemNotFound, itemName)
	}
	return s.GetCurrentMarketPrice(ctx, itemName, base)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}

func (s *service) GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error) {
	points, err := s.repo.GetPriceHistory(ctx, itemName, clampLimit(limit))
	if err != nil {
		return []domain.PricePoint{}, storageFailure(ctx, ErrMsgHistoryFailed, err)
	}
	return points, nil
}

func (s *service) GetMarketStatus(ctx context.Context) ([]domain.MarketEntry, error) {
	entries, err := s.repo.ListMarketEntries(ctx)
	if err != nil {
		return []domain.MarketEntry{}, storageFailure(ctx, ErrMsgStatusFailed, err)
	}
	return entries, nil
}

func (s *service) InitStocks(ctx context.Context) error {
	defs := s.catalog.DefaultStocks()
	stocks := make([]domain.Stock, 0, len(defs))
	for _, d := range defs {
		stocks = append(stocks, domain.Stock{
			StockID:       strings.ToUpper(d.StockID),
			Name:          d.Name,
			Price:         d.Price,
			PreviousPrice: d.Price,
			Volatility:    d.Volatility,
		})
	}
	if err := s.repo.InitStocks(ctx, stocks); err != nil {
		return storageFailure(ctx, ErrMsgInitStocksFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgStocksInitialized, "count", len(stocks))
	return nil
}

func (s *service) GetAllStocks(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.ListStocks(ctx)
	if err != nil {
		return []domain.Stock{}, storageFailure(ctx, ErrMsgStocksFailed, err)
	}
	return stocks, nil
}

func (s *service) GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error) {
	points, err := s.repo.GetStockHistory(ctx, strings.ToUpper(stockID), clampLimit(limit))
	if err != nil {
		return []domain.PricePoint{}, storageFailure(ctx, ErrMsgHistoryFailed, err)
	}
	return points, nil
}

func (s *service) GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error) {
	holdings, err := s.repo.GetHoldings(ctx, userID)
	if err != nil {
		return []domain.StockHolding{}, storageFailure(ctx, ErrMsgHoldingsFailed, err)
	}
	return holdings, nil
}
