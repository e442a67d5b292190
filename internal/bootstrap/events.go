package bootstrap

import (
	"log/slog"

	"github.com/osse101/JellyBot_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector and audit logger to it.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	RegisterEventHandlers(bus)
	slog.Info(LogMsgEventSystemInitialized, "types", len(event.AllTypes))
	return bus
}
