// Package leaktest reports goroutines a test started and did not stop.
package leaktest

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	// settleFor bounds how long Check waits for stragglers to exit.
	settleFor = time.Second
	pollEvery = 20 * time.Millisecond
)

// GoroutineChecker remembers which goroutines existed when it was created.
type GoroutineChecker struct {
	t      testing.TB
	before map[string]struct{}
}

// NewGoroutineChecker snapshots the running goroutines.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	before := make(map[string]struct{})
	for id := range goroutines() {
		before[id] = struct{}{}
	}
	return &GoroutineChecker{t: t, before: before}
}

// Check fails the test when more than tolerance goroutines started since the
// snapshot are still alive after settleFor. Their stacks are logged.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleFor)
	for {
		leaked := g.fresh()
		if len(leaked) <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("%d goroutine(s) leaked (tolerance %d):\n\n%s",
				len(leaked), tolerance, strings.Join(leaked, "\n\n"))
			return
		}
		time.Sleep(pollEvery)
	}
}

func (g *GoroutineChecker) fresh() []string {
	var out []string
	for id, stack := range goroutines() {
		if _, seen := g.before[id]; !seen {
			out = append(out, stack)
		}
	}
	return out
}

// CheckNoGoroutineLeak runs fn and checks that it left nothing running.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// goroutines maps "goroutine N" to its stack, leaving out the caller.
func goroutines() map[string]string {
	buf := make([]byte, 64<<10)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	blocks := bytes.Split(buf, []byte("\n\n"))
	out := make(map[string]string, len(blocks))
	for i, block := range blocks {
		if i == 0 {
			// The first block is the goroutine calling runtime.Stack.
			continue
		}
		header, _, _ := strings.Cut(string(block), " [")
		out[header] = string(block)
	}
	return out
}
