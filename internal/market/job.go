package market

import (
	"context"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// Ticker is the part of Service the scheduled job runs.
type Ticker interface {
	RunTick(ctx context.Context) (domain.TickSummary, error)
}

// TickJob runs one market tick on the worker pool.
type TickJob struct {
	ticker Ticker
}

// NewTickJob wraps ticker as a worker job.
func NewTickJob(ticker Ticker) *TickJob {
	return &TickJob{ticker: ticker}
}

// Name labels the job in logs and metrics.
func (j *TickJob) Name() string {
	return TickJobName
}

// Process runs the tick.
func (j *TickJob) Process(ctx context.Context) error {
	_, err := j.ticker.RunTick(ctx)
	return err
}
