package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChance(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		roll    float64
		want    bool
	}{
		{"always at 100", 100, 0.9999, true},
		{"never at 0", 0, 0.0, false},
		{"under threshold", 30, 0.29, true},
		{"at threshold fails", 30, 0.30, false},
		{"negative never", -5, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chance(tt.percent, func() float64 { return tt.roll })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundToInt64(t *testing.T) {
	assert.Equal(t, int64(3), RoundToInt64(2.5))
	assert.Equal(t, int64(2), RoundToInt64(2.49))
	assert.Equal(t, int64(-3), RoundToInt64(-2.5))
}

func TestClampInt64(t *testing.T) {
	assert.Equal(t, int64(50), ClampInt64(10, 50, 500))
	assert.Equal(t, int64(500), ClampInt64(900, 50, 500))
	assert.Equal(t, int64(120), ClampInt64(120, 50, 500))
}

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 7, RandomInt(7, 2))
}

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   int64
		wantOK bool
	}{
		{"small", 4, 2500, 10000, true},
		{"zero", 0, math.MaxInt64, 0, true},
		{"exact max", 1, math.MaxInt64, math.MaxInt64, true},
		{"overflow", 4, 1 << 62, 0, false},
		{"just over", 2, math.MaxInt64/2 + 1, 0, false},
		{"negative", -1, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulInt64(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
