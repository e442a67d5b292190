package database

import "time"

// Connection pool settings
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// ConnectAttempts is how many pings NewPool makes before giving up.
	ConnectAttempts = 5

	// ConnectRetryPause is the first pause between pings. It doubles each time.
	ConnectRetryPause = 500 * time.Millisecond
)

// Migration directions accepted by Migrate
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStatus = "status"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToCreateMigrator   = "failed to create migration provider"
	ErrMsgFailedToMigrate          = "failed to run migrations"
	ErrMsgUnknownMigrationDirecton = "unknown migration direction %q"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgDatabaseNotReady                = "Database not ready yet"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationStatus                 = "Migration status"
	LogMsgNoPendingMigrations             = "No pending migrations"
)
