package bootstrap

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/battle"
	"github.com/osse101/JellyBot_Go/internal/config"
	"github.com/osse101/JellyBot_Go/internal/cooldown"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/ledger"
	"github.com/osse101/JellyBot_Go/internal/market"
	"github.com/osse101/JellyBot_Go/internal/progression"
)

// Services holds the domain services.
type Services struct {
	Cooldown    cooldown.Service
	Ledger      ledger.Service
	Market      market.Service
	Battle      battle.Service
	Progression progression.Service
}

// InitializeServices builds every domain service from the repositories.
func InitializeServices(cfg *config.Config, dbPool *pgxpool.Pool, repos *Repositories, catalog *item.Catalog, bus event.Bus) (*Services, error) {
	windows, err := cfg.CooldownWindows()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedParseCooldowns, err)
	}
	loc, err := cfg.DailyLocation()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDailyLocation, err)
	}

	cooldownSvc := cooldown.NewPostgresService(dbPool, cooldown.Config{
		DevMode:   cfg.DevMode,
		Windows:   windows,
	})

	progressionSvc := progression.NewService(repos.Progression, catalog, bus)

	return &Services{
		Cooldown: cooldownSvc,
		Ledger: ledger.NewService(repos.Ledger, cooldownSvc, catalog, bus, ledger.Config{
			Location:    loc,
			DailyBase:   cfg.DailyBaseReward,
			StreakBonus: cfg.DailyStreakBonus,
			StreakCap:   cfg.DailyStreakCap,
		}),
		Market: market.NewService(repos.Market, catalog, bus, market.Config{
			CacheSize: cfg.PriceCacheSize,
			CacheTTL:  cfg.PriceCacheTTL,
		}),
		Battle:      battle.NewService(repos.Dungeon, progressionSvc, bus),
		Progression: progressionSvc,
	}, nil
}
