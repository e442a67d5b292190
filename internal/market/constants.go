package market

import "time"

// ==================== Simulator Rules ====================

const (
	BaseVolatility  = 0.05
	SpikeVolatility = 0.15
	// SpikeChance is the probability of a high-volatility tick.
	SpikeChance     = 0.10

	MinPriceFactor = 0.5
	MaxPriceFactor = 5.0

	// StockPriceFloor is the lowest price a stock can fall to.
	StockPriceFloor int64 = 100

	DefaultHistoryLimit = 24
	MaxHistoryLimit     = 500
)

// ==================== Cache ====================

const (
	// CacheSchemaVersion invalidates cached quotes when the quote shape changes
	CacheSchemaVersion = "1.0"

	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// ==================== Jobs ====================

const (
	TickJobName = "market_tick"
)

// ==================== Trade Messages ====================

const (
	MsgInvalidAmount     = "수량은 1 이상이어야 해요."
	MsgInvalidPrice      = "가격 정보가 올바르지 않아요."
	MsgUnknownStock      = "존재하지 않는 주식이에요."
	MsgInsufficientJelly = "젤리가 부족해요!"
	MsgInsufficientStock = "보유한 주식이 부족해요!"
	MsgTradeFailed       = "거래를 처리하지 못했어요. 잠시 후 다시 시도해 주세요."
	MsgTotalTooLarge     = "거래 금액이 너무 커요."
	MsgBoughtFmt         = "✅ **%s** %d주를 구매했어요! (총 %d 젤리)"
	MsgSoldFmt           = "✅ **%s** %d주를 판매했어요! (총 %d 젤리)"
)

// ==================== Error Messages ====================

const (
	ErrMsgGetPriceFailed     = "get market price"
	ErrMsgHistoryFailed      = "get price history"
	ErrMsgStatusFailed       = "get market status"
	ErrMsgStocksFailed       = "list stocks"
	ErrMsgHoldingsFailed     = "get holdings"
	ErrMsgTradeFailed        = "trade stock"
	ErrMsgSellFailed         = "sell item"
	ErrMsgInitStocksFailed   = "init stocks"
	ErrMsgTickItemFailedFmt  = "tick item %s: %w"
	ErrMsgTickStockFailedFmt = "tick stock %s: %w"
	ErrMsgUnknownItemFmt     = "%w: %s is not traded on the market"
	ErrMsgInvalidAmountFmt   = "%w: amount must be at least 1"
	ErrMsgNotSellableFmt     = "%w: %s cannot be sold"
	ErrMsgSaleOverflowFmt    = "%w: %d x %d overflows the sale total"
)

// ==================== Log Messages ====================

const (
	LogMsgStorageFailure    = "Market storage failure, returning safe default"
	LogMsgTickStarted       = "Market tick started"
	LogMsgTickCompleted     = "Market tick completed"
	LogMsgTickItemFailed    = "Market tick failed for item"
	LogMsgTickStockFailed   = "Market tick failed for stock"
	LogMsgStocksInitialized = "Default stocks initialized"
	LogMsgTradeCompleted    = "Stock trade completed"
	LogMsgItemSold          = "Item sold"
)
