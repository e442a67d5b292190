package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs are labelled in logs and metrics.
type Named interface {
	Name() string
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	jobTimeout time.Duration
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
		jobTimeout: DefaultJobTimeout,
	}
}

// WithJobTimeout overrides the per-job deadline.
func (p *Pool) WithJobTimeout(d time.Duration) *Pool {
	p.jobTimeout = d
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	name := JobName(job)
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	log := logger.FromContext(ctx).With("job", name)

	start := time.Now()
	err := safeProcess(ctx, job)
	if err != nil {
		metrics.JobsProcessed.WithLabelValues(name, metrics.ResultError).Inc()
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	metrics.JobsProcessed.WithLabelValues(name, metrics.ResultSuccess).Inc()
	log.Debug(LogMsgWorkerJobDone, "duration", time.Since(start))
}

// safeProcess keeps a panicking job from killing its worker.
func safeProcess(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job.Process(ctx)
}

// JobName is the label a job is logged and counted under.
func JobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return UnnamedJob
}

// Enqueue adds a job to the queue, blocking while it is full. It gives up
// once the pool is stopped.
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued.
// Callers log the refusal; the scheduler counts it as a skipped run.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for in-flight jobs. Queued jobs that
// have not started are dropped. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		logger.FromContext(context.Background()).Info(LogMsgWorkerPoolStopping)
		close(p.quit)
	})
	p.wg.Wait()
}
