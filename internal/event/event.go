package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	BattleConcluded  Type = domain.EventTypeBattleConcluded
	UpgradeAttempted Type = domain.EventTypeUpgradeAttempted
	MarketTicked     Type = domain.EventTypeMarketTicked
	StockTraded      Type = domain.EventTypeStockTraded
	DailyClaimed     Type = domain.EventTypeDailyClaimed
	ItemUsed         Type = domain.EventTypeItemUsed
)

// AllTypes lists every domain event type.
var AllTypes = []Type{BattleConcluded, UpgradeAttempted, MarketTicked, StockTraded, DailyClaimed, ItemUsed}

// Typed event payloads

// BattleConcludedPayloadV1 is published when a battle ends in a win, loss or flight.
type BattleConcludedPayloadV1 struct {
	UserID  string `json:"user_id"`
	RunID   string `json:"run_id"`
	Stage   int    `json:"stage"`
	Result  string `json:"result"`
	Special bool   `json:"is_special"`
	Reward  int64  `json:"reward"`
	Turns   int    `json:"turns"`
}

// UpgradeAttemptedPayloadV1 is published after every upgrade roll.
type UpgradeAttemptedPayloadV1 struct {
	UserID   string `json:"user_id"`
	Track    string `json:"track"`
	ItemName string `json:"item_name,omitempty"`
	Success  bool   `json:"success"`
	NewLevel int    `json:"new_level"`
	Cost     int64  `json:"cost"`
}

// MarketPrice is one item price reported by a tick.
type MarketPrice struct {
	ItemName string `json:"item_name"`
	Price    int64  `json:"price"`
}

// MarketTickedPayloadV1 is published after a simulator pass.
type MarketTickedPayloadV1 struct {
	ItemsUpdated  int           `json:"items_updated"`
	StocksUpdated int           `json:"stocks_updated"`
	Prices        []MarketPrice `json:"prices,omitempty"`
	Timestamp     int64         `json:"timestamp"`
}

// StockTradedPayloadV1 is published after a successful trade.
type StockTradedPayloadV1 struct {
	UserID  string `json:"user_id"`
	StockID string `json:"stock_id"`
	Buy     bool   `json:"buy"`
	Amount  int64  `json:"amount"`
	Total   int64  `json:"total"`
}

// DailyClaimedPayloadV1 is published on a successful daily claim.
type DailyClaimedPayloadV1 struct {
	UserID string `json:"user_id"`
	Streak int    `json:"streak"`
	Reward int64  `json:"reward"`
}

// ItemUsedPayloadV1 is published when a consumable is used.
type ItemUsedPayloadV1 struct {
	UserID   string `json:"user_id"`
	ItemName string `json:"item_name"`
	Source   string `json:"source"`
}

// Item use sources
const (
	SourceInventory = "inventory"
	SourceBattle    = "battle"
	SourceGift      = "gift"
)

// Type-safe event constructors

// NewBattleConcludedEvent creates a battle concluded event
func NewBattleConcludedEvent(s *domain.BattleSession, state domain.BattleState, reward int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleConcluded,
		Payload: BattleConcludedPayloadV1{
			UserID:  s.UserID,
			RunID:   s.RunID,
			Stage:   s.Stage,
			Result:  string(state),
			Special: s.Special,
			Reward:  reward,
			Turns:   s.Turn,
		},
		Metadata: map[string]interface{}{
			"run_id": s.RunID,
		},
	}
}

// NewUpgradeAttemptedEvent creates an upgrade attempted event
func NewUpgradeAttemptedEvent(userID string, r *domain.UpgradeResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradeAttempted,
		Payload: UpgradeAttemptedPayloadV1{
			UserID:   userID,
			Track:    r.Track,
			ItemName: r.ItemName,
			Success:  r.Success,
			NewLevel: r.NewLevel,
			Cost:     r.Cost,
		},
	}
}

// NewMarketTickedEvent creates a market ticked event
func NewMarketTickedEvent(summary domain.TickSummary, prices []MarketPrice) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketTicked,
		Payload: MarketTickedPayloadV1{
			ItemsUpdated:  summary.ItemsUpdated,
			StocksUpdated: summary.StocksUpdated,
			Prices:        prices,
			Timestamp:     summary.RanAt.Unix(),
		},
	}
}

// NewStockTradedEvent creates a stock traded event
func NewStockTradedEvent(userID string, buy bool, r domain.TradeResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StockTraded,
		Payload: StockTradedPayloadV1{
			UserID:  userID,
			StockID: r.StockID,
			Buy:     buy,
			Amount:  r.Amount,
			Total:   r.Total,
		},
	}
}

// NewDailyClaimedEvent creates a daily claimed event
func NewDailyClaimedEvent(userID string, claim domain.DailyClaim) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyClaimed,
		Payload: DailyClaimedPayloadV1{
			UserID: userID,
			Streak: claim.Streak,
			Reward: claim.Reward,
		},
		Metadata: map[string]interface{}{
			"claimed_at": time.Now().Unix(),
		},
	}
}

// NewItemUsedEvent creates an item used event
func NewItemUsedEvent(userID, itemName, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{
			UserID:   userID,
			ItemName: itemName,
			Source:   source,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes evt on bus and logs a failure instead of
// returning it. A nil bus is allowed.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
