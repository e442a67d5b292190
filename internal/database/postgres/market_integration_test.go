package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/testing/pgtest"
)

func TestMarketRepository_Integration(t *testing.T) {
	pool := pgtest.Start(t)
	repo := NewMarketRepository(pool)
	ledger := NewLedgerRepository(pool)
	ctx := context.Background()

	t.Run("seed keeps an existing row", func(t *testing.T) {
		e, err := repo.GetMarketEntry(ctx, "붕어")
		require.NoError(t, err)
		assert.Nil(t, e)

		e, err = repo.SeedMarketEntry(ctx, "붕어", 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), e.CurrentPrice)
		assert.Equal(t, domain.TrendStable, e.Trend)

		e, err = repo.SeedMarketEntry(ctx, "붕어", 999)
		require.NoError(t, err)
		assert.Equal(t, int64(100), e.CurrentPrice)
	})

	t.Run("history is the latest points oldest first", func(t *testing.T) {
		base := time.Now().UTC().Truncate(time.Second)
		for i, price := range []int64{100, 110, 120, 130} {
			require.NoError(t, repo.SaveMarketEntry(ctx, domain.MarketEntry{
				ItemName:     "참나무",
				CurrentPrice: price,
				Trend:        domain.TrendUp,
				ChangeRate:   1.5,
				LastUpdated:  base.Add(time.Duration(i) * time.Minute),
			}))
		}

		points, err := repo.GetPriceHistory(ctx, "참나무", 3)
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, []int64{110, 120, 130}, []int64{points[0].Price, points[1].Price, points[2].Price})

		entries, err := repo.ListMarketEntries(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})

	t.Run("init stocks keeps live price", func(t *testing.T) {
		require.NoError(t, repo.InitStocks(ctx, []domain.Stock{{StockID: "JELLY", Name: "젤리", Price: 1000, Volatility: 0.05}}))
		require.NoError(t, repo.UpdateStockPrice(ctx, "JELLY", 1200))
		require.NoError(t, repo.InitStocks(ctx, []domain.Stock{{StockID: "JELLY", Name: "젤리 전자", Price: 1000, Volatility: 0.08}}))

		s, err := repo.GetStock(ctx, "JELLY")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, int64(1200), s.Price)
		assert.Equal(t, int64(1000), s.PreviousPrice)
		assert.Equal(t, "젤리 전자", s.Name)
		assert.InDelta(t, 0.08, s.Volatility, 1e-9)

		hist, err := repo.GetStockHistory(ctx, "JELLY", 10)
		require.NoError(t, err)
		assert.Len(t, hist, 3)

		assert.ErrorIs(t, repo.UpdateStockPrice(ctx, "NOPE", 100), domain.ErrStockNotFound)
	})

	t.Run("buy uses weighted average and sell deletes at zero", func(t *testing.T) {
		_, err := ledger.AddBalance(ctx, "trader", 10_000)
		require.NoError(t, err)

		ok, err := repo.BuyStock(ctx, "trader", "JELLY", 2, 1000)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.BuyStock(ctx, "trader", "JELLY", 2, 2000)
		require.NoError(t, err)
		assert.True(t, ok)

		holdings, err := repo.GetHoldings(ctx, "trader")
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.Equal(t, int64(4), holdings[0].Amount)
		assert.InDelta(t, 1500.0, holdings[0].AveragePrice, 1e-9)

		ok, err = repo.BuyStock(ctx, "trader", "JELLY", 100, 1000)
		require.NoError(t, err)
		assert.False(t, ok, "insufficient funds")

		ok, err = repo.SellStock(ctx, "trader", "JELLY", 5, 1000)
		require.NoError(t, err)
		assert.False(t, ok, "insufficient holding")

		ok, err = repo.SellStock(ctx, "trader", "JELLY", 1, 3000)
		require.NoError(t, err)
		assert.True(t, ok)
		holdings, err = repo.GetHoldings(ctx, "trader")
		require.NoError(t, err)
		assert.Equal(t, int64(3), holdings[0].Amount)
		assert.InDelta(t, 1500.0, holdings[0].AveragePrice, 1e-9)

		ok, err = repo.SellStock(ctx, "trader", "JELLY", 3, 1000)
		require.NoError(t, err)
		assert.True(t, ok)
		holdings, err = repo.GetHoldings(ctx, "trader")
		require.NoError(t, err)
		assert.Empty(t, holdings)

		acc, err := ledger.GetAccount(ctx, "trader")
		require.NoError(t, err)
		assert.Equal(t, int64(10_000-2000-4000+3000+3000), acc.Balance)
	})

	t.Run("sell items credits market price", func(t *testing.T) {
		require.NoError(t, ledger.AddItem(ctx, "seller", "붕어", 3))

		ok, err := repo.SellItems(ctx, "seller", "붕어", 4, 100)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.SellItems(ctx, "seller", "붕어", 3, 100)
		require.NoError(t, err)
		assert.True(t, ok)

		acc, err := ledger.GetAccount(ctx, "seller")
		require.NoError(t, err)
		assert.Equal(t, int64(300), acc.Balance)
	})
}

func TestMarketRepository_TradeTotalOverflow(t *testing.T) {
	// Overflow is refused before any query runs, so no pool is needed.
	repo := NewMarketRepository(nil)
	ctx := context.Background()

	ok, err := repo.BuyStock(ctx, "trader", "JELLY", 4, 1<<62)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, ok)

	ok, err = repo.SellStock(ctx, "trader", "JELLY", 4, 1<<62)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, ok)

	ok, err = repo.SellItems(ctx, "trader", "붕어", 8, 1<<61)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, ok)
}
