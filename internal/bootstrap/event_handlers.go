package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (battle, upgrade, market, daily counters)
// - Audit logger (one structured line per domain event)
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorReady)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditReady)
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Info(LogMsgDomainEvent,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
