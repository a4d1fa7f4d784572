package blaster

import (
	"math"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Beam is a projectile fired from the bird. Size and speed grow with the
// charge it was released at.
type Beam struct {
	Rect   core.Rect
	VX, VY int
	Dir    Direction
	Charge int
	Alive  bool
}

// BeamScale is the size multiplier for a beam released at charge.
func BeamScale(charge int) float64 {
	return 1 + float64(charge)/100*4
}

// BeamSpeedMultiplier is the speed multiplier for a beam released at charge.
func BeamSpeedMultiplier(charge int) float64 {
	return 1 + float64(charge)/100*2
}

// NewBeam creates a beam traveling along the bird's facing. It spawns one
// bird width (or height) ahead of the bird center on each non-zero axis.
// The hitbox is the base box rotated to the travel angle and scaled.
func NewBeam(b *Bird, charge int, cfg config.BeamConfig) (*Beam, error) {
	if charge < 0 {
		return nil, ErrNegativeCharge
	}
	dir := b.Facing
	if dir.IsZero() {
		dir = DirRight
	}

	w, h := rotatedSize(cfg.Width, cfg.Height, dir.Angle(), BeamScale(charge))
	if w <= 0 || h <= 0 {
		return nil, ErrDegenerateRect
	}

	cx, cy := b.Rect.Center()
	cx += b.Rect.W * dir.DX
	cy += b.Rect.H * dir.DY

	mult := BeamSpeedMultiplier(charge)
	return &Beam{
		Rect:   core.RectAt(cx, cy, w, h),
		VX:     int(float64(dir.DX*cfg.Speed) * mult),
		VY:     int(float64(dir.DY*cfg.Speed) * mult),
		Dir:    dir,
		Charge: charge,
		Alive:  true,
	}, nil
}

// rotatedSize returns the axis-aligned bounding box of a w×h box rotated by
// angle radians and scaled.
func rotatedSize(w, h int, angle, scale float64) (int, int) {
	sin, cos := math.Abs(math.Sin(angle)), math.Abs(math.Cos(angle))
	fw, fh := float64(w), float64(h)
	rw := (fw*cos + fh*sin) * scale
	rh := (fw*sin + fh*cos) * scale
	return int(math.Round(rw)), int(math.Round(rh))
}

// Update moves the beam by its velocity.
func (bm *Beam) Update() {
	bm.Rect = bm.Rect.Moved(bm.VX, bm.VY)
}
