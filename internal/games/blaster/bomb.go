package blaster

import (
	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Bomb is a circular hazard that bounces around the arena. Collision uses
// the circle's bounding square.
type Bomb struct {
	Rect   core.Rect
	VX, VY int
	Radius int
	Alive  bool
}

// NewBomb spawns a bomb at a random position with the whole circle inside
// bounds, moving diagonally down-right.
func NewBomb(rng *SimpleRNG, bounds core.Bounds, cfg config.BombConfig) (*Bomb, error) {
	d := 2 * cfg.Radius
	if d <= 0 || d > bounds.W || d > bounds.H {
		return nil, ErrDegenerateRect
	}
	cx := rng.IntRange(cfg.Radius, bounds.W-cfg.Radius)
	cy := rng.IntRange(cfg.Radius, bounds.H-cfg.Radius)
	return &Bomb{
		Rect:   core.NewRect(cx-cfg.Radius, cy-cfg.Radius, d, d),
		VX:     cfg.Speed,
		VY:     cfg.Speed,
		Radius: cfg.Radius,
		Alive:  true,
	}, nil
}

// SpawnBombs creates n bombs, drawing positions from rng in order.
func SpawnBombs(n int, rng *SimpleRNG, bounds core.Bounds, cfg config.BombConfig) ([]*Bomb, error) {
	if n <= 0 {
		return nil, ErrNoHazards
	}
	bombs := make([]*Bomb, 0, n)
	for i := 0; i < n; i++ {
		b, err := NewBomb(rng, bounds, cfg)
		if err != nil {
			return nil, err
		}
		bombs = append(bombs, b)
	}
	return bombs, nil
}

// Update flips velocity on any axis where the bomb is out of bounds, then
// moves. The check happens before the move, so a bomb may sit one step past
// the wall for a frame before it comes back.
func (b *Bomb) Update(bounds core.Bounds) {
	insideX, insideY := bounds.Check(b.Rect)
	if !insideX {
		b.VX = -b.VX
	}
	if !insideY {
		b.VY = -b.VY
	}
	b.Rect = b.Rect.Moved(b.VX, b.VY)
}
