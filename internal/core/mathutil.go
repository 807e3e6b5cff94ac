// Package core provides fundamental types shared by the simulation, the
// event loop and the terminal platform. It has no external dependencies so
// game logic stays pure and testable.
package core

import "time"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// SaturatingSub returns a-b, never going below zero.
// A negative b counts as zero, so the result never exceeds a.
func SaturatingSub(a, b int) int {
	if b <= 0 {
		return max(a, 0)
	}
	if b >= a {
		return 0
	}
	return a - b
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Remaining returns how much of interval is left after elapsed, clamped at zero.
func Remaining(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}

// MinDuration returns the smaller of two durations.
func MinDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
