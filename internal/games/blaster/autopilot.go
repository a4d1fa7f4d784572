package blaster

import "github.com/vovakirdan/tui-blaster/internal/core"

// Autopilot produces deterministic inputs for headless runs. It lines the
// bird up with the nearest bomb, turns toward it and fires a beam charged
// to ChargeTarget.
type Autopilot struct {
	ChargeTarget int
}

// Next returns the input for the coming frame.
func (a Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.Session() != StatePlaying {
		return in
	}

	bird := g.Bird()
	if bird.Charging && bird.Charge >= a.ChargeTarget {
		in.Release(core.ActionFire)
	}

	target := nearestBomb(bird, g.Bombs())
	if target == nil {
		return in
	}

	bx, by := bird.Rect.Center()
	tx, ty := target.Rect.Center()
	step := g.cfg.Player.Step

	switch {
	case ty < by-step:
		in.Set(core.ActionUp)
		return in
	case ty > by+step:
		in.Set(core.ActionDown)
		return in
	}

	want := DirRight
	if tx < bx {
		want = DirLeft
	}
	if bird.Facing != want {
		if want == DirLeft {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		return in
	}

	if !bird.Charging {
		in.Press(core.ActionFire)
	}
	return in
}

// nearestBomb returns the live bomb closest to the bird, or nil.
func nearestBomb(bird *Bird, bombs []*Bomb) *Bomb {
	bx, by := bird.Rect.Center()
	var best *Bomb
	bestDist := 0
	for _, b := range bombs {
		if !b.Alive {
			continue
		}
		cx, cy := b.Rect.Center()
		d := abs(cx-bx) + abs(cy-by)
		if best == nil || d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
