package market

import (
	"math"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// ItemMove is one simulated price step of a collectible.
type ItemMove struct {
	Price      int64
	Trend      domain.Trend
	ChangeRate float64
}

// PriceBounds returns the allowed range [ceil(0.5*base), 5*base].
func PriceBounds(base int64) (lo, hi int64) {
	lo = int64(math.Ceil(float64(base) * MinPriceFactor))
	hi = int64(float64(base) * MaxPriceFactor)
	return lo, hi
}

// NextItemPrice moves current one tick. roll draws from [0, 1) and is used
// twice: once for the volatility spike and once for the change itself.
func NextItemPrice(current, base int64, trend domain.Trend, roll func() float64) ItemMove {
	volatility := BaseVolatility
	if roll() < SpikeChance {
		volatility = SpikeVolatility
	}
	change := (roll()*2-1)*volatility + trend.Momentum()

	lo, hi := PriceBounds(base)
	next := utils.ClampInt64(utils.RoundToInt64(float64(current)*(1+change)), lo, hi)

	move := ItemMove{Price: next, Trend: domain.TrendStable}
	switch {
	case next > current:
		move.Trend = domain.TrendUp
	case next < current:
		move.Trend = domain.TrendDown
	}
	if current > 0 {
		move.ChangeRate = float64(next-current) / float64(current) * 100
	}
	return move
}

// NextStockPrice applies a normal shock with standard deviation sigma.
// normal draws from N(0, 1).
func NextStockPrice(price int64, sigma float64, normal func() float64) int64 {
	next := utils.RoundToInt64(float64(price) * (1 + normal()*sigma))
	return max(next, StockPriceFloor)
}
