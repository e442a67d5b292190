package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsRejected = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameLedgerDebits     = "ledger_debits_total"
	MetricNameMarketTicks      = "market_ticks_total"
	MetricNameItemPrice        = "market_item_price"
	MetricNameStockTrades      = "stock_trades_total"
	MetricNameBattlesConcluded = "battles_concluded_total"
	MetricNameUpgradeAttempts  = "upgrade_attempts_total"
	MetricNameDailyClaims      = "daily_claims_total"
	MetricNameItemsUsed        = "items_used_total"
	MetricNameJellyRewarded    = "jelly_rewarded_total"
	MetricNameJobsProcessed    = "worker_jobs_processed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRequestsRejected = "Requests refused by the auth or rate-limit middleware"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextLedgerDebits     = "Conditional balance and item debits by result"
	HelpTextMarketTicks      = "Market simulator passes"
	HelpTextItemPrice        = "Current simulated price of a collectible"
	HelpTextStockTrades      = "Successful stock trades by side"
	HelpTextBattlesConcluded = "Dungeon battles concluded by result"
	HelpTextUpgradeAttempts  = "Upgrade and enhancement rolls by track and result"
	HelpTextDailyClaims      = "Daily rewards claimed"
	HelpTextItemsUsed        = "Consumables used by item and source"
	HelpTextJellyRewarded    = "Jelly paid out by battles and daily claims"
	HelpTextJobsProcessed    = "Background jobs processed by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelResult = "result"
	LabelTrack  = "track"
	LabelSide   = "side"
	LabelSource = "source"
	LabelKind   = "kind"
	LabelReason = "reason"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
	ResultSkipped = "skipped"

	SideBuy  = "buy"
	SideSell = "sell"

	KindBalance = "balance"
	KindItems   = "items"

	SourceBattle = "battle"
	SourceDaily  = "daily"

	UnmatchedRoute = "unmatched"

	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
