package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(ago time.Duration) *time.Time {
		ts := now.Add(-ago)
		return &ts
	}

	tests := []struct {
		name string
		last *time.Time
		want time.Duration
	}{
		{"never used", nil, 0},
		{"two minutes in", at(2 * time.Minute), 3 * time.Minute},
		{"one second left", at(5*time.Minute - time.Second), time.Second},
		{"exactly elapsed", at(5 * time.Minute), 0},
		{"long ago", at(24 * time.Hour), 0},
		{"clock skew into the future", at(-time.Minute), 6 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remaining(now, tt.last, 5*time.Minute))
		})
	}
}

func TestConfig_Window(t *testing.T) {
	cfg := Config{Windows: map[string]time.Duration{"crime": 30 * time.Minute}}
	assert.Equal(t, 30*time.Minute, cfg.Window("crime"))
	assert.Equal(t, DefaultWindow, cfg.Window("mine"))

	cfg.Default = time.Minute
	assert.Equal(t, time.Minute, cfg.Window("mine"))
	assert.Equal(t, DefaultWindow, Config{}.Window("anything"))
}
