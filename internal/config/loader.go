package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadBlaster loads Blaster configuration.
// Search order: customPath -> ~/.arcade/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
// Files are layered over the defaults, so a partial file only overrides the keys it sets.
func LoadBlaster(customPath string) (BlasterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBlaster(data)
		if err != nil {
			return BlasterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blaster.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBlaster(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blaster.yaml"); err == nil {
		if cfg, err := ParseBlaster(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBlaster(defaultBlasterYAML)
	if err != nil {
		return DefaultBlasterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBlaster decodes YAML over the defaults and validates the result.
func ParseBlaster(data []byte) (BlasterConfig, error) {
	cfg := DefaultBlasterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlasterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BlasterConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c BlasterConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects configurations the simulation cannot run with.
func (c BlasterConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"arena.bomb_count", c.Arena.BombCount},
		{"arena.tick_rate", c.Arena.TickRate},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.step", c.Player.Step},
		{"charge.rate", c.Charge.Rate},
		{"charge.limit", c.Charge.Limit},
		{"beam.width", c.Beam.Width},
		{"beam.height", c.Beam.Height},
		{"beam.speed", c.Beam.Speed},
		{"bomb.radius", c.Bomb.Radius},
		{"bomb.speed", c.Bomb.Speed},
		{"effects.explosion_ticks", c.Effects.ExplosionTicks},
		{"effects.explosion_size", c.Effects.ExplosionSize},
		{"effects.overcharge_ticks", c.Effects.OverchargeTicks},
		{"input.hold_ticks", c.Input.HoldTicks},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.value)
		}
	}

	if c.Session.GameOverTicks < 0 {
		return fmt.Errorf("%w: session.game_over_ticks must not be negative", ErrInvalid)
	}
	if c.Charge.Danger < 0 || c.Charge.Danger > c.Charge.Limit {
		return fmt.Errorf("%w: charge.danger must be within [0, %d]", ErrInvalid, c.Charge.Limit)
	}

	if 2*c.Bomb.Radius > c.Arena.Width || 2*c.Bomb.Radius > c.Arena.Height {
		return fmt.Errorf("%w: bomb of radius %d does not fit the arena", ErrInvalid, c.Bomb.Radius)
	}

	halfW, halfH := c.Player.Width/2, c.Player.Height/2
	left, top := c.Player.StartX-halfW, c.Player.StartY-halfH
	if left < 0 || top < 0 || left+c.Player.Width > c.Arena.Width || top+c.Player.Height > c.Arena.Height {
		return fmt.Errorf("%w: player start (%d, %d) puts the bird outside the arena",
			ErrInvalid, c.Player.StartX, c.Player.StartY)
	}

	switch c.Input.FireMode {
	case FireHold, FireToggle:
	default:
		return fmt.Errorf("%w: input.fire_mode must be %q or %q, got %q",
			ErrInvalid, FireHold, FireToggle, c.Input.FireMode)
	}

	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
