package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomNormal returns a standard normal sample
func RandomNormal() float64 {
	return rand.NormFloat64() //nolint:gosec // Game logic randomness, not security critical
}

// Chance reports whether a roll in [0, 1) lands under percent/100.
// percent <= 0 never succeeds and percent >= 100 always does.
func Chance(percent int, roll func() float64) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return roll()*100 < float64(percent)
}

// RoundToInt64 rounds half away from zero
func RoundToInt64(v float64) int64 {
	return int64(math.Round(v))
}

// ClampInt64 bounds v to [lo, hi]
func ClampInt64(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}

// MulInt64 multiplies two non-negative values, reporting false when the
// product does not fit in an int64.
func MulInt64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}
