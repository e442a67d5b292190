package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/config"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/market"
)

// LoadCatalog reads the item catalog and validates it against the schema.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*item.Catalog, error) {
	logger.FromContext(ctx).Info(LogMsgLoadingCatalog, "path", cfg.CatalogPath, "schema", cfg.CatalogSchemaPath)

	catalog, err := item.NewLoader(cfg.CatalogSchemaPath).LoadCatalog(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return catalog, nil
}

// SyncMarket inserts any catalog stock the market table does not have yet.
// Existing prices are left alone.
func SyncMarket(ctx context.Context, svc market.Service) error {
	if err := svc.InitStocks(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedMarket, err)
	}
	logger.FromContext(ctx).Info(LogMsgMarketSeeded)
	return nil
}
