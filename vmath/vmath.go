package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LogScaledCount divides limit by log10(distance), rounded up, bounded to [1, limit]
// Distances with log10 at or below knee get the full limit
func LogScaledCount(limit int, distance, knee float64) int {
	if limit < 1 {
		return 1
	}
	l := math.Log10(distance)
	if !(l > knee) {
		return limit
	}
	n := int(math.Ceil(float64(limit) / l))
	return ClampInt(n, 1, limit)
}
