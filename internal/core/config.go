package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Done     bool // Whether the platform should close the session
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventFire       EventType = iota // A projectile was launched (Value = charge)
	EventKill                        // A hazard was destroyed (Value = points awarded)
	EventOvercharge                  // Charge exceeded the limit (Value = charge)
	EventGameOver                    // The session ended (Value = final score)
	EventMisfire                     // A release produced no projectile (Value = charge, Reason = error)
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventFire:
		return "fire"
	case EventKill:
		return "kill"
	case EventOvercharge:
		return "overcharge"
	case EventGameOver:
		return "game_over"
	case EventMisfire:
		return "misfire"
	default:
		return "unknown"
	}
}

// Event is emitted by a game during Step. Platforms may log or ignore them.
type Event struct {
	Type   EventType
	X, Y   int    // World position where it happened
	Value  int    // Type-specific payload
	Reason string // Optional detail (e.g. why the game ended)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
