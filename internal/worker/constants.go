package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobDone      = "Worker job done"
	LogMsgWorkerJobPanicked  = "Worker job panicked"
	LogMsgWorkerPoolStopping = "Worker pool stopping"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultJobTimeout bounds a single job run.
	DefaultJobTimeout = 2 * time.Minute

	// UnnamedJob labels jobs that do not implement Named.
	UnnamedJob = "job"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
