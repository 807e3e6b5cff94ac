package core

import "time"

// Default cadences. The tick drives the simulation; the render interval is
// the minimum spacing between frames and must be shorter than the tick.
const (
	DefaultTickInterval   = 1000 * time.Millisecond
	DefaultRenderInterval = 50 * time.Millisecond
)

// RuntimeConfig contains the timing configuration for one session.
type RuntimeConfig struct {
	TickInterval   time.Duration // Spacing between simulation advances
	RenderInterval time.Duration // Minimum spacing between renderer invocations
}

// DefaultConfig returns a RuntimeConfig with the default cadences.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval:   DefaultTickInterval,
		RenderInterval: DefaultRenderInterval,
	}
}
