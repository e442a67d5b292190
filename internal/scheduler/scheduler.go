package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/JellyBot_Go/internal/metrics"
	"github.com/osse101/JellyBot_Go/internal/worker"
)

// Enqueuer is the part of worker.Pool the scheduler needs.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler hands jobs to a worker pool on fixed intervals.
type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler feeding pool.
func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{pool: pool, ctx: ctx, cancel: cancel}
}

// Schedule runs job every interval. A run that finds the pool queue full is
// skipped, so a slow job never has runs piling up behind it.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.start(interval, job, false)
}

// ScheduleNow is Schedule plus one run right away.
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.start(interval, job, true)
}

func (s *Scheduler) start(interval time.Duration, job worker.Job, immediate bool) {
	name := worker.JobName(job)
	slog.Default().Info(LogMsgJobScheduled, "job", name, "interval", interval, "immediate", immediate)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.submit(name, job)
		}
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.submit(name, job)
			}
		}
	}()
}

func (s *Scheduler) submit(name string, job worker.Job) {
	if s.pool.TryEnqueue(job) {
		return
	}
	metrics.JobsProcessed.WithLabelValues(name, metrics.ResultSkipped).Inc()
	slog.Default().Warn(LogMsgTickSkipped, "job", name)
}

// Stop ends every schedule and waits for the tickers to exit. Jobs already
// queued on the pool are left to the pool. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Default().Debug(LogMsgSchedulerStop)
}
