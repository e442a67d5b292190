package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/config"
	"github.com/osse101/JellyBot_Go/internal/database"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/market"
	"github.com/osse101/JellyBot_Go/internal/scheduler"
	"github.com/osse101/JellyBot_Go/internal/server"
	"github.com/osse101/JellyBot_Go/internal/worker"
)

// App is a fully wired process: pool, catalog, event bus and services.
type App struct {
	Config   *config.Config
	Pool     *pgxpool.Pool
	Catalog  *item.Catalog
	Bus      event.Bus
	Repos    *Repositories
	Services *Services
}

// Options controls the optional startup steps.
type Options struct {
	// Migrate applies pending migrations before services are built.
	Migrate bool
	// SeedMarket inserts missing catalog stocks.
	SeedMarket bool
}

// Connect opens the database pool.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	logger.FromContext(ctx).Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "db", cfg.DBName)
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	return pool, nil
}

// Initialize connects, loads the catalog and builds every service.
// The caller owns the returned App and must Close it.
func Initialize(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	startCtx, cancel := context.WithTimeout(ctx, StartupTimeout)
	defer cancel()

	pool, err := Connect(startCtx, cfg)
	if err != nil {
		return nil, err
	}

	app, err := build(startCtx, cfg, pool, opts)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, opts Options) (*App, error) {
	if opts.Migrate {
		if err := database.Migrate(ctx, pool, database.DirectionUp); err != nil {
			return nil, err
		}
	}

	catalog, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := InitializeEventSystem()
	repos := InitializeRepositories(pool)
	svcs, err := InitializeServices(cfg, pool, repos, catalog, bus)
	if err != nil {
		return nil, err
	}

	if opts.SeedMarket {
		if err := SyncMarket(ctx, svcs.Market); err != nil {
			return nil, err
		}
	}

	return &App{
		Config:   cfg,
		Pool:     pool,
		Catalog:  catalog,
		Bus:      bus,
		Repos:    repos,
		Services: svcs,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}

// Tick runs one market tick in the foreground.
func (a *App) Tick(ctx context.Context) (domain.TickSummary, error) {
	return a.Services.Market.RunTick(ctx)
}

// Serve starts the HTTP API and the market scheduler and blocks until ctx is
// cancelled or the listener fails. Components are then shut down in order.
func (a *App) Serve(ctx context.Context) error {
	workers := worker.NewPool(a.Config.WorkerCount, a.Config.WorkerQueueSize)
	workers.Start()

	sched := scheduler.New(workers)
	sched.Schedule(a.Config.MarketTickInterval, market.NewTickJob(a.Services.Market))
	logger.FromContext(ctx).Info(LogMsgBackgroundJobsStarted,
		"workers", a.Config.WorkerCount,
		"market_tick_interval", a.Config.MarketTickInterval)

	srv := server.NewServer(server.Config{
		Port:           a.Config.Port,
		APIKey:         a.Config.APIKey,
		TrustedProxies: a.Config.TrustedProxies,
		CatalogVersion: a.Catalog.Version(),
	}, a.Pool, server.Services{
		Ledger:         a.Services.Ledger,
		Market:         a.Services.Market,
		Battle:         a.Services.Battle,
		Progression:    a.Services.Progression,
		CooldownWindow: a.Services.Cooldown.Window,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.FromContext(ctx).Info(LogMsgShutdownSignal)
	case err, ok := <-serveErr:
		if ok {
			logger.FromContext(ctx).Error(LogMsgServerFailed, "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   workers,
		Pool:      a.Pool,
	})
	return runErr
}
