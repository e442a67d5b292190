package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(DailyClaimed, func(ctx context.Context, evt Event) error {
		assert.Equal(t, DailyClaimed, evt.Type)
		payload, err := DecodePayload[DailyClaimedPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "u1", payload.UserID)
		assert.Equal(t, 3, payload.Streak)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewDailyClaimedEvent("u1", domain.DailyClaim{Claimed: true, Streak: 3, Reward: 1200}))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}
	bus.Subscribe(ItemUsed, handler)
	bus.Subscribe(ItemUsed, handler)
	bus.Subscribe(StockTraded, handler)

	require.NoError(t, bus.Publish(context.Background(), NewItemUsedEvent("u1", domain.ItemHPPotion, SourceBattle)))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: MarketTicked}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(UpgradeAttempted, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(UpgradeAttempted, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewUpgradeAttemptedEvent("u1", &domain.UpgradeResult{Track: domain.TrackSword}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.Equal(t, 2, calls, "a failing handler does not stop the rest")
}

func TestMemoryBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewMemoryBus()
	var mu sync.Mutex
	seen := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(MarketTicked, func(ctx context.Context, evt Event) error {
				mu.Lock()
				seen++
				mu.Unlock()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = bus.Publish(context.Background(), NewMarketTickedEvent(domain.TickSummary{RanAt: time.Now()}, nil))
		}()
	}
	wg.Wait()

	mu.Lock()
	before := seen
	mu.Unlock()
	require.NoError(t, bus.Publish(context.Background(), NewMarketTickedEvent(domain.TickSummary{RanAt: time.Now()}, nil)))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, before+20, seen)
}

func TestPublishBestEffort_SwallowsErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ItemUsed, func(ctx context.Context, evt Event) error {
		return errors.New("boom")
	})

	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), bus, NewItemUsedEvent("u1", "x", SourceInventory))
		PublishBestEffort(context.Background(), nil, NewItemUsedEvent("u1", "x", SourceInventory))
	})
}

func TestNewBattleConcludedEvent(t *testing.T) {
	s := &domain.BattleSession{UserID: "u1", RunID: "r1", Stage: 7, Turn: 4, Special: true}
	evt := NewBattleConcludedEvent(s, domain.BattleWon, 21000)

	assert.Equal(t, BattleConcluded, evt.Type)
	assert.Equal(t, "r1", evt.GetMetadataValue("run_id"))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[BattleConcludedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "won", payload.Result)
	assert.Equal(t, int64(21000), payload.Reward)
	assert.Equal(t, 4, payload.Turns)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u2", "item_name": "HP 물약", "source": "battle"}
	payload, err := DecodePayload[ItemUsedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "u2", payload.UserID)
	assert.Equal(t, SourceBattle, payload.Source)
}

func TestDecodePayload_PointerAndNil(t *testing.T) {
	p := &ItemUsedPayloadV1{UserID: "u3"}
	got, err := DecodePayload[ItemUsedPayloadV1](p)
	require.NoError(t, err)
	assert.Equal(t, "u3", got.UserID)

	_, err = DecodePayload[ItemUsedPayloadV1](nil)
	assert.ErrorIs(t, err, ErrNoPayload)

	_, err = DecodePayload[ItemUsedPayloadV1]("not an object")
	assert.Error(t, err)
}

func TestMemoryBus_JoinsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	boom := errors.New("boom")
	bus.Subscribe(ItemUsed, func(context.Context, Event) error { return boom })
	bus.Subscribe(ItemUsed, func(context.Context, Event) error { return nil })

	err := bus.Publish(context.Background(), Event{Type: ItemUsed})
	assert.ErrorIs(t, err, boom)
}
