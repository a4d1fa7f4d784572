// Package config provides YAML-based game configuration loading and
// validation for the blaster game.
package config

// BlasterConfig contains all configuration for the Blaster game.
// Distances are in world units (the play area is ArenaW×ArenaH), durations in ticks.
type BlasterConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Charge  ChargeConfig  `yaml:"charge"`
	Beam    BeamConfig    `yaml:"beam"`
	Bomb    BombConfig    `yaml:"bomb"`
	Effects EffectsConfig `yaml:"effects"`
	Session SessionConfig `yaml:"session"`
	Input   InputConfig   `yaml:"input"`
}

// ArenaConfig defines the play area and the frame rate.
type ArenaConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BombCount int `yaml:"bomb_count"`
	TickRate  int `yaml:"tick_rate"`
}

// PlayerConfig defines the bird's start position, hitbox and movement step.
type PlayerConfig struct {
	StartX int `yaml:"start_x"` // Center X
	StartY int `yaml:"start_y"` // Center Y
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"` // Units moved per held direction per tick
}

// ChargeConfig defines the charge state machine.
type ChargeConfig struct {
	Rate   int `yaml:"rate"`   // Charge added per tick while held
	Limit  int `yaml:"limit"`  // Exceeding this triggers overcharge
	Danger int `yaml:"danger"` // Charge bar switches to warning above this
}

// BeamConfig defines the unscaled beam hitbox and base speed.
type BeamConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// BombConfig defines bomb size and speed.
type BombConfig struct {
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"`
}

// EffectsConfig defines explosion lifetimes.
type EffectsConfig struct {
	ExplosionTicks  int `yaml:"explosion_ticks"`
	ExplosionSize   int `yaml:"explosion_size"`
	OverchargeTicks int `yaml:"overcharge_ticks"`
}

// SessionConfig defines what happens after the game ends.
type SessionConfig struct {
	// GameOverTicks is how long the game-over screen is held before the
	// session closes. Zero keeps it open until restart or quit.
	GameOverTicks int `yaml:"game_over_ticks"`
}

// FireMode selects how terminal key repeats are turned into fire press/release.
type FireMode string

const (
	// FireHold treats the fire key as held while key repeats keep arriving.
	FireHold FireMode = "hold"
	// FireToggle starts charging on one press and fires on the next.
	FireToggle FireMode = "toggle"
)

// InputConfig defines how the platform synthesizes held keys.
type InputConfig struct {
	FireMode  FireMode `yaml:"fire_mode"`
	HoldTicks int      `yaml:"hold_ticks"` // Ticks without a repeat before a key counts as released
}
