package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic shuffles.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic deals
	Debug   bool  // Show the last resolved move transition on screen
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate progress to the platform.
type GameState struct {
	CardsHome int // Cards moved to the foundations so far
	Moves     int // Accepted moves this deal
}

// EventResult is returned by Game.Handle() after each input event.
type EventResult struct {
	State GameState
}
