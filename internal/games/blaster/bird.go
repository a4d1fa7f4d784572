package blaster

import (
	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// moveKeys lists the movement actions in evaluation order with their unit deltas.
var moveKeys = [...]struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Bird is the player avatar. It owns the charge state machine.
type Bird struct {
	Rect     core.Rect
	Facing   Direction
	Charge   int
	Charging bool

	step        int
	chargeRate  int
	chargeLimit int
}

// NewBird places a bird centered on the configured start position, facing right.
func NewBird(p config.PlayerConfig, c config.ChargeConfig) *Bird {
	return &Bird{
		Rect:        core.RectAt(p.StartX, p.StartY, p.Width, p.Height),
		Facing:      DirRight,
		step:        p.Step,
		chargeRate:  c.Rate,
		chargeLimit: c.Limit,
	}
}

// Move sums the held direction keys, moves by step units per axis and
// reverts the whole move if the result leaves bounds. A non-zero sum updates
// the facing even when the move is reverted.
func (b *Bird) Move(in core.InputFrame, bounds core.Bounds) {
	var sum Direction
	for _, k := range moveKeys {
		if in.Has(k.action) {
			sum.DX += k.dir.DX
			sum.DY += k.dir.DY
		}
	}
	if sum.IsZero() {
		return
	}

	next := b.Rect.Moved(sum.DX*b.step, sum.DY*b.step)
	if bounds.Contains(next) {
		b.Rect = next
	}
	b.Facing = sum
}

// BeginCharge starts a fresh charge cycle.
func (b *Bird) BeginCharge() {
	b.Charging = true
	b.Charge = 0
}

// AccumulateCharge adds one tick of charge while charging. It reports the
// charge and true when the limit is exceeded; the charge cycle is then over.
func (b *Bird) AccumulateCharge() (int, bool) {
	if !b.Charging {
		return 0, false
	}
	b.Charge += b.chargeRate
	if b.Charge <= b.chargeLimit {
		return 0, false
	}
	over := b.Charge
	b.Charge = 0
	b.Charging = false
	return over, true
}

// ReleaseCharge ends the charge cycle. It returns the accumulated charge and
// whether a beam should be fired. A release outside a cycle fires nothing.
func (b *Bird) ReleaseCharge() (int, bool) {
	if !b.Charging {
		return 0, false
	}
	charge := b.Charge
	b.Charging = false
	b.Charge = 0
	return charge, charge <= b.chargeLimit
}

// Tint is the red overlay intensity for the current charge, in [0, 255].
// It grows by 2.55 per charge point and truncates, so charge 100 gives 254;
// only charge past 100 saturates.
func (b *Bird) Tint() uint8 {
	if !b.Charging || b.Charge <= 0 {
		return 0
	}
	return uint8(min(255, int(float64(b.Charge)*2.55))) //#nosec G115 -- clamped to 255
}
