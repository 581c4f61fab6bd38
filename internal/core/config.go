package core

import "time"

// RuntimeConfig contains settings passed from the host loop to the engine.
type RuntimeConfig struct {
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{TickRate: 120}
}

// FrameDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 120
	}
	return time.Second / time.Duration(c.TickRate)
}
