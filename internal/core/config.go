package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Input/render ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Points for a won game, 0 otherwise
	GameOver bool // Whether the game has been decided
	Won      bool // Whether the decided game was won
	Paused   bool // Whether the game is paused

	MovesUsed    int
	MovesAllowed int
	BoardSize    int
	NumColors    int
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
