package config

import (
	_ "embed"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the default Blaster configuration.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Arena: ArenaConfig{
			Width:     1100,
			Height:    650,
			BombCount: 5,
			TickRate:  50,
		},
		Player: PlayerConfig{
			StartX: 300,
			StartY: 200,
			Width:  64,
			Height: 64,
			Step:   5,
		},
		Charge: ChargeConfig{
			Rate:   2,
			Limit:  150,
			Danger: 100,
		},
		Beam: BeamConfig{
			Width:  50,
			Height: 12,
			Speed:  5,
		},
		Bomb: BombConfig{
			Radius: 10,
			Speed:  5,
		},
		Effects: EffectsConfig{
			ExplosionTicks:  20,
			ExplosionSize:   40,
			OverchargeTicks: 60,
		},
		Session: SessionConfig{
			GameOverTicks: 100, // 2 seconds at 50fps
		},
		Input: InputConfig{
			FireMode:  FireToggle,
			HoldTicks: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlasterYAML
}
