package core

import "time"

// DefaultTickInterval is the simulation cadence used when none is configured.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	Grid         int           // Board cells per side for grid games; 0 picks the game default
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Interval returns the tick interval, falling back to the default
// for zero or negative values.
func (c RuntimeConfig) Interval() time.Duration {
	if c.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return c.TickInterval
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
