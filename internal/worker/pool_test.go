package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/JellyBot_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	panics   bool
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.panics {
		panic("boom")
	}
	return j.err
}

func (j *testJob) Name() string { return "test" }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	assert.Eventually(t, cond, time.Second, 5*time.Millisecond)
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	waitFor(t, func() bool { return atomic.LoadInt32(&executed) == TestExpectedJobCount })
	pool.Stop()
	checker.Check(0)
}

func TestPool_FailingAndPanickingJobsKeepWorkersAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("fail")})
	pool.Enqueue(&testJob{executed: &executed, panics: true})
	pool.Enqueue(&testJob{executed: &executed})

	waitFor(t, func() bool { return atomic.LoadInt32(&executed) == 3 })
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	select {
	case <-j.release:
	case <-ctx.Done():
	}
	return nil
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// Not started: the queue holds one job and rejects the next.
	release := make(chan struct{})
	assert.True(t, pool.TryEnqueue(&blockingJob{release: release}))
	assert.False(t, pool.TryEnqueue(&blockingJob{release: release}))

	close(release)
	pool.Start()
	pool.Stop()
}

func TestPool_JobTimeout(t *testing.T) {
	var done int32
	pool := NewPool(1, 1).WithJobTimeout(20 * time.Millisecond)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(jobFunc(func(ctx context.Context) error {
		<-ctx.Done()
		atomic.StoreInt32(&done, 1)
		return ctx.Err()
	}))
	waitFor(t, func() bool { return atomic.LoadInt32(&done) == 1 })
}

func TestPool_StopTwiceAndEnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	returned := make(chan struct{})
	go func() {
		var n int32
		pool.Enqueue(&testJob{executed: &n})
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}
}

type jobFunc func(ctx context.Context) error

func (f jobFunc) Process(ctx context.Context) error { return f(ctx) }
