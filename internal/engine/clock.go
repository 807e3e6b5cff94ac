package engine

import "time"

// Clock is the time source used by the loop.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns the current wall-clock time.
func (WallClock) Now() time.Time {
	return time.Now()
}
