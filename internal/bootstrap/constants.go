package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line.
	ServiceName = "jellybot"

	// LogFileName is the active file inside LOG_DIR. lumberjack rotates it in place.
	LogFileName = "jellybot.log"

	// LogFileMaxAgeDays drops rotated files older than this.
	LogFileMaxAgeDays = 28
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingJellyBot    = "Starting JellyBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
)

// =============================================================================
// Startup
// =============================================================================

const (
	LogMsgConnectingDatabase      = "Connecting to database"
	LogMsgLoadingCatalog          = "Loading item catalog"
	LogMsgMarketSeeded            = "Market stocks seeded"
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgMetricsCollectorReady   = "Metrics collector registered"
	LogMsgEventAuditReady         = "Event audit logger subscribed"
	LogMsgBackgroundJobsStarted   = "Background jobs started"
	LogMsgDomainEvent             = "Domain event"
	ErrMsgFailedConnectDatabase   = "failed to connect to database"
	ErrMsgFailedLoadCatalog       = "failed to load item catalog"
	ErrMsgFailedSeedMarket        = "failed to seed market stocks"
	ErrMsgFailedParseCooldowns    = "failed to parse cooldowns"
	ErrMsgFailedLoadDailyLocation = "failed to load daily timezone"
)

// =============================================================================
// Timeouts
// =============================================================================

const (
	// StartupTimeout bounds connecting, migrating and seeding at boot.
	StartupTimeout = 30 * time.Second

	// ShutdownTimeout bounds the whole graceful shutdown.
	ShutdownTimeout = 15 * time.Second

	// DBMaxConnIdleTime closes pooled connections idle this long.
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime recycles pooled connections.
	DBMaxConnLifetime = time.Hour
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgStoppingWorkers      = "Stopping worker pool..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerFailed         = "Server failed"
	LogMsgLogFileCloseFailed   = "Failed to close log file"
	LogMsgShutdownSignal       = "Shutdown signal received"
)
