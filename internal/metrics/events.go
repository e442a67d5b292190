package metrics

import (
	"context"

	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all domain events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.BattleConcluded:
		p, err := event.DecodePayload[event.BattleConcludedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BattlesConcluded.WithLabelValues(p.Result).Inc()
		if p.Reward > 0 {
			JellyRewarded.WithLabelValues(SourceBattle).Add(float64(p.Reward))
		}

	case event.UpgradeAttempted:
		p, err := event.DecodePayload[event.UpgradeAttemptedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		result := ResultFailure
		if p.Success {
			result = ResultSuccess
		}
		UpgradeAttempts.WithLabelValues(p.Track, result).Inc()

	case event.MarketTicked:
		p, err := event.DecodePayload[event.MarketTickedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		MarketTicks.Inc()
		for _, price := range p.Prices {
			ItemPrice.WithLabelValues(price.ItemName).Set(float64(price.Price))
		}

	case event.StockTraded:
		p, err := event.DecodePayload[event.StockTradedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		side := SideSell
		if p.Buy {
			side = SideBuy
		}
		StockTrades.WithLabelValues(side).Inc()

	case event.DailyClaimed:
		p, err := event.DecodePayload[event.DailyClaimedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		DailyClaims.Inc()
		JellyRewarded.WithLabelValues(SourceDaily).Add(float64(p.Reward))

	case event.ItemUsed:
		p, err := event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsUsed.WithLabelValues(p.ItemName, p.Source).Inc()
	}
	return nil
}
