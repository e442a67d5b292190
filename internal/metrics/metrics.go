package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsRejected,
			Help: HelpTextHTTPRequestsRejected,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	// LedgerDebits is recorded directly by the ledger service.
	LedgerDebits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerDebits,
			Help: HelpTextLedgerDebits,
		},
		[]string{LabelKind, LabelResult},
	)

	MarketTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketTicks,
			Help: HelpTextMarketTicks,
		},
	)

	ItemPrice = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameItemPrice,
			Help: HelpTextItemPrice,
		},
		[]string{LabelItem},
	)

	StockTrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStockTrades,
			Help: HelpTextStockTrades,
		},
		[]string{LabelSide},
	)

	BattlesConcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesConcluded,
			Help: HelpTextBattlesConcluded,
		},
		[]string{LabelResult},
	)

	UpgradeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeAttempts,
			Help: HelpTextUpgradeAttempts,
		},
		[]string{LabelTrack, LabelResult},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem, LabelSource},
	)

	JellyRewarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJellyRewarded,
			Help: HelpTextJellyRewarded,
		},
		[]string{LabelSource},
	)

	// JobsProcessed is recorded by the worker pool.
	JobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsProcessed,
			Help: HelpTextJobsProcessed,
		},
		[]string{LabelType, LabelResult},
	)
)

// RecordDebit counts one conditional debit.
func RecordDebit(kind string, ok bool, err error) {
	result := ResultSuccess
	switch {
	case err != nil:
		result = ResultError
	case !ok:
		result = ResultFailure
	}
	LedgerDebits.WithLabelValues(kind, result).Inc()
}
