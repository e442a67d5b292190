package domain

import "time"

// Trend is the direction of an item's last price movement.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Symbol returns the arrow shown next to a price.
func (t Trend) Symbol() string {
	switch t {
	case TrendUp:
		return "📈"
	case TrendDown:
		return "📉"
	default:
		return "➖"
	}
}

// Momentum is the drift the simulator adds on the next tick.
func (t Trend) Momentum() float64 {
	switch t {
	case TrendUp:
		return 0.01
	case TrendDown:
		return -0.01
	default:
		return 0
	}
}

// MarketEntry is the current simulated price of a collectible item.
type MarketEntry struct {
	ItemName     string    `json:"item_name"`
	CurrentPrice int64     `json:"current_price"`
	Trend        Trend     `json:"trend"`
	ChangeRate   float64   `json:"change_rate"`
	LastUpdated  time.Time `json:"last_updated"`
}

// PricePoint is one sample of an item or stock price series.
type PricePoint struct {
	Price     int64     `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceQuote is what a price lookup hands to economy actions.
type PriceQuote struct {
	Price  int64  `json:"price"`
	Trend  Trend  `json:"trend"`
	Symbol string `json:"symbol"`
}

// Stock is a simulated stock.
type Stock struct {
	StockID       string    `json:"stock_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	PreviousPrice int64     `json:"previous_price"`
	Volatility    float64   `json:"volatility"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ChangePercent is the percent move since the previous tick.
func (s Stock) ChangePercent() float64 {
	if s.PreviousPrice <= 0 {
		return 0
	}
	return float64(s.Price-s.PreviousPrice) / float64(s.PreviousPrice) * 100
}

// StockHolding is an account's position in one stock.
type StockHolding struct {
	UserID       string  `json:"user_id"`
	StockID      string  `json:"stock_id"`
	Amount       int64   `json:"amount"`
	AveragePrice float64 `json:"average_price"`
}

// TradeResult is the outcome of a stock trade.
type TradeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	StockID string `json:"stock_id"`
	Amount  int64  `json:"amount"`
	Price   int64  `json:"price"`
	Total   int64  `json:"total"`
}

// SaleResult is the outcome of selling items for jelly.
type SaleResult struct {
	Success  bool   `json:"success"`
	ItemName string `json:"item_name"`
	Amount   int    `json:"amount"`
	Price    int64  `json:"price"`
	Total    int64  `json:"total"`
}

// TickSummary reports one simulator pass.
type TickSummary struct {
	ItemsUpdated  int       `json:"items_updated"`
	ItemsSeeded   int       `json:"items_seeded"`
	StocksUpdated int       `json:"stocks_updated"`
	RanAt         time.Time `json:"ran_at"`
}
