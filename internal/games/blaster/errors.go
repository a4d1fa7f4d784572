package blaster

import "errors"

// Contract violations. The simulation never produces these on its own; they
// guard the constructors against bad callers and bad configuration.
var (
	ErrNegativeCharge = errors.New("blaster: negative charge")
	ErrNoHazards      = errors.New("blaster: bomb count must be positive")
	ErrDegenerateRect = errors.New("blaster: hitbox has zero area")
)
