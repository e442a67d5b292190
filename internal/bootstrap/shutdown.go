package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JellyBot_Go/internal/database"
	"github.com/osse101/JellyBot_Go/internal/scheduler"
	"github.com/osse101/JellyBot_Go/internal/server"
	"github.com/osse101/JellyBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Pool      database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new market ticks are queued)
// 3. Worker pool (in-flight ticks finish)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.Workers != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.Workers.Stop()
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
