package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for deterministic simulation; the platform layer uses
// the screen dimensions for rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a fire-and-forget notification from the simulation to the
// platform layer, used for one-shot effects such as sounds. The game
// never waits on the outcome.
type Event int

const (
	// EventBounce fires when the player bounces off a platform.
	// The platform layer plays it as a terminal bell.
	EventBounce Event = iota
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
