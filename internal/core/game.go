package core

// Game is the interface between a simulation core and the platform layer.
// Implementations contain pure logic with no external dependencies
// (especially no Bubble Tea); the platform handles input mapping, timing,
// and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "doodle").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when retrying after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Right, Pause).
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}
