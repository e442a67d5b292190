package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// RunTick moves every catalog collectible and every stock one step. A
// failure on one entry is logged and the pass continues; the joined errors
// are returned with the partial summary. The quote cache is purged at the end.
func (s *service) RunTick(ctx context.Context) (domain.TickSummary, error) {
	log := logger.FromContext(ctx)
	summary := domain.TickSummary{RanAt: s.now()}
	log.Info(LogMsgTickStarted)

	var errs []error
	var prices []event.MarketPrice

	current, err := s.repo.ListMarketEntries(ctx)
	if err != nil {
		return summary, storageFailure(ctx, ErrMsgStatusFailed, err)
	}
	byName := make(map[string]domain.MarketEntry, len(current))
	for _, e := range current {
		byName[e.ItemName] = e
	}

	for _, def := range s.catalog.Collectibles() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		entry := domain.MarketEntry{ItemName: def.Name, LastUpdated: summary.RanAt}
		if prev, ok := byName[def.Name]; ok {
			move := NextItemPrice(prev.CurrentPrice, def.Price, prev.Trend, s.rnd)
			entry.CurrentPrice, entry.Trend, entry.ChangeRate = move.Price, move.Trend, move.ChangeRate
		} else {
			entry.CurrentPrice, entry.Trend = def.Price, domain.TrendStable
		}

		if err := s.repo.SaveMarketEntry(ctx, entry); err != nil {
			log.Warn(LogMsgTickItemFailed, "item", def.Name, "error", err)
			errs = append(errs, fmt.Errorf(ErrMsgTickItemFailedFmt, def.Name, err))
			continue
		}
		if _, seen := byName[def.Name]; seen {
			summary.ItemsUpdated++
		} else {
			summary.ItemsSeeded++
		}
		prices = append(prices, event.MarketPrice{ItemName: def.Name, Price: entry.CurrentPrice})
	}

	if err := s.InitStocks(ctx); err != nil {
		errs = append(errs, err)
	}
	stocks, err := s.repo.ListStocks(ctx)
	if err != nil {
		errs = append(errs, storageFailure(ctx, ErrMsgStocksFailed, err))
	}
	for _, st := range stocks {
		if ctx.Err() != nil {
			break
		}
		next := NextStockPrice(st.Price, st.Volatility, s.normal)
		if err := s.repo.UpdateStockPrice(ctx, st.StockID, next); err != nil {
			log.Warn(LogMsgTickStockFailed, "stock_id", st.StockID, "error", err)
			errs = append(errs, fmt.Errorf(ErrMsgTickStockFailedFmt, st.StockID, err))
			continue
		}
		summary.StocksUpdated++
	}

	s.cache.Clear()

	log.Info(LogMsgTickCompleted,
		"items_updated", summary.ItemsUpdated,
		"items_seeded", summary.ItemsSeeded,
		"stocks_updated", summary.StocksUpdated,
		"errors", len(errs))
	event.PublishBestEffort(ctx, s.bus, event.NewMarketTickedEvent(summary, prices))
	return summary, errors.Join(errs...)
}
