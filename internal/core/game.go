package core

// Game is the contract between a simulation and the platform that drives it.
// Implementations contain pure logic; the platform handles input mapping,
// pacing and presentation.
type Game interface {
	// ID returns a short identifier used in logs and CLI output.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game for the given runtime settings.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by exactly one frame.
	Step(in InputFrame) StepResult

	// Render draws the current frame into dst, clearing it first.
	Render(dst *Screen)

	// State reports score and lifecycle flags without advancing the game.
	State() GameState
}
