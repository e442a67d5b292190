package ledger

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
)

func TestBuyItem(t *testing.T) {
	ctx := context.Background()

	t.Run("debits and adds in one transaction", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("TryDebit", mock.Anything, testUser, int64(1500)).Return(true, nil)
		f.tx.On("AddItem", mock.Anything, testUser, domain.ItemHPPotion, 3).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)

		res, err := f.svc.BuyItem(ctx, testUser, domain.ItemHPPotion, 3)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(500), res.Price)
		assert.Equal(t, int64(1500), res.Total)
	})

	t.Run("armor is sold in the shop", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("TryDebit", mock.Anything, testUser, int64(2500)).Return(true, nil)
		f.tx.On("AddItem", mock.Anything, testUser, "가죽 모자", 1).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)

		res, err := f.svc.BuyItem(ctx, testUser, "가죽 모자", 1)
		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("insufficient balance adds nothing", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("TryDebit", mock.Anything, testUser, int64(2000)).Return(false, nil)

		res, err := f.svc.BuyItem(ctx, testUser, "꿀떡", 1)
		require.NoError(t, err)
		assert.False(t, res.Success)
		f.tx.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("storage failure on add is reported", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("TryDebit", mock.Anything, testUser, int64(500)).Return(true, nil)
		f.tx.On("AddItem", mock.Anything, testUser, domain.ItemHPPotion, 1).Return(errDB)

		res, err := f.svc.BuyItem(ctx, testUser, domain.ItemHPPotion, 1)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.False(t, res.Success)
		f.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rejected before any storage call", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.BuyItem(ctx, testUser, domain.ItemHPPotion, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.svc.BuyItem(ctx, testUser, "젤리 주머니", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound, "reward-only items are not for sale")

		_, err = f.svc.BuyItem(ctx, testUser, "붕어", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		res, err := f.svc.BuyItem(ctx, testUser, domain.ItemHPPotion, math.MaxInt)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, res.Total)

		f.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})
}

func TestGiftItem(t *testing.T) {
	ctx := context.Background()

	t.Run("spends one unit for affinity", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("RemoveItem", mock.Anything, testUser, "장미 꽃다발", 1).Return(true, nil)
		f.tx.On("AddAffinity", mock.Anything, testUser, int64(50)).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)

		var sources []string
		f.bus.Subscribe(event.ItemUsed, func(ctx context.Context, evt event.Event) error {
			p, _ := event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload)
			sources = append(sources, p.Source)
			return nil
		})

		res, err := f.svc.GiftItem(ctx, testUser, "장미 꽃다발")
		require.NoError(t, err)
		assert.Equal(t, int64(50), res.AffinityGranted)
		assert.Equal(t, []string{event.SourceGift}, sources)
	})

	t.Run("not held", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.tx.On("RemoveItem", mock.Anything, testUser, "장미 꽃다발", 1).Return(false, nil)

		_, err := f.svc.GiftItem(ctx, testUser, "장미 꽃다발")
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		f.tx.AssertNotCalled(t, "AddAffinity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown and non-gift items", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GiftItem(ctx, testUser, "없는 아이템")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		_, err = f.svc.GiftItem(ctx, testUser, domain.ItemHPPotion)
		assert.ErrorIs(t, err, domain.ErrNoEffect)
		f.repo.AssertNotCalled(t, "BeginTx", mock.Anything)
	})
}
