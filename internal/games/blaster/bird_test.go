package blaster

import (
	"testing"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

func newTestBird() *Bird {
	cfg := config.DefaultBlasterConfig()
	return NewBird(cfg.Player, cfg.Charge)
}

var arena = core.Bounds{W: 1100, H: 650}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewBirdCenteredOnStart(t *testing.T) {
	b := newTestBird()
	cx, cy := b.Rect.Center()
	if cx != 300 || cy != 200 {
		t.Errorf("center = (%d, %d), expected (300, 200)", cx, cy)
	}
	if b.Facing != DirRight {
		t.Errorf("initial facing = %v, expected right", b.Facing)
	}
}

func TestBirdMove(t *testing.T) {
	tests := []struct {
		name       string
		actions    []core.Action
		dx, dy     int
		wantFacing Direction
	}{
		{"right", []core.Action{core.ActionRight}, 5, 0, DirRight},
		{"up", []core.Action{core.ActionUp}, 0, -5, DirUp},
		{"diagonal", []core.Action{core.ActionUp, core.ActionLeft}, -5, -5, DirUpLeft},
		{"opposing keys cancel", []core.Action{core.ActionUp, core.ActionDown}, 0, 0, DirRight},
		{"nothing held", nil, 0, 0, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBird()
			start := b.Rect
			b.Move(held(tc.actions...), arena)

			if b.Rect.X-start.X != tc.dx || b.Rect.Y-start.Y != tc.dy {
				t.Errorf("moved by (%d, %d), expected (%d, %d)",
					b.Rect.X-start.X, b.Rect.Y-start.Y, tc.dx, tc.dy)
			}
			if b.Facing != tc.wantFacing {
				t.Errorf("facing = %v, expected %v", b.Facing, tc.wantFacing)
			}
		})
	}
}

func TestBirdMoveRevertedAtWall(t *testing.T) {
	b := newTestBird()
	b.Rect.X = 0

	b.Move(held(core.ActionLeft, core.ActionDown), arena)

	if b.Rect.X != 0 || b.Rect.Y != 168 {
		t.Errorf("whole move should be reverted, got (%d, %d)", b.Rect.X, b.Rect.Y)
	}
	if b.Facing != DirDownLeft {
		t.Errorf("facing should still update on a reverted move, got %v", b.Facing)
	}
}

func TestBirdChargeUpToLimit(t *testing.T) {
	b := newTestBird()
	b.BeginCharge()

	// 75 ticks at rate 2 lands exactly on the limit
	for i := 0; i < 75; i++ {
		if _, over := b.AccumulateCharge(); over {
			t.Fatalf("overcharged early at tick %d", i+1)
		}
	}
	if b.Charge != 150 {
		t.Fatalf("charge = %d, expected 150", b.Charge)
	}

	over, ok := b.AccumulateCharge()
	if !ok || over != 152 {
		t.Fatalf("AccumulateCharge() = (%d, %v), expected (152, true)", over, ok)
	}
	if b.Charging || b.Charge != 0 {
		t.Errorf("overcharge should end the cycle, charging=%v charge=%d", b.Charging, b.Charge)
	}
}

func TestBirdAccumulateWithoutCycle(t *testing.T) {
	b := newTestBird()
	if _, over := b.AccumulateCharge(); over || b.Charge != 0 {
		t.Errorf("charge should not build without a press, got %d", b.Charge)
	}
}

func TestBirdReleaseCharge(t *testing.T) {
	tests := []struct {
		name     string
		charging bool
		charge   int
		want     int
		wantFire bool
	}{
		{"no cycle", false, 0, 0, false},
		{"zero charge", true, 0, 0, true},
		{"partial", true, 40, 40, true},
		{"exactly at limit", true, 150, 150, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBird()
			b.Charging = tc.charging
			b.Charge = tc.charge

			got, fire := b.ReleaseCharge()
			if got != tc.want || fire != tc.wantFire {
				t.Errorf("ReleaseCharge() = (%d, %v), expected (%d, %v)", got, fire, tc.want, tc.wantFire)
			}
			if b.Charging || b.Charge != 0 {
				t.Error("release should reset the charge cycle")
			}
		})
	}
}

func TestBirdBeginChargeDiscardsLeftover(t *testing.T) {
	tests := []struct {
		name     string
		charging bool
		charge   int
	}{
		{"fresh bird", false, 0},
		{"mid charge", true, 40},
		{"in danger", true, 120},
		{"at limit", true, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBird()
			b.Charging = tc.charging
			b.Charge = tc.charge

			b.BeginCharge()
			if !b.Charging || b.Charge != 0 {
				t.Errorf("after BeginCharge charging=%v charge=%d, expected a fresh cycle", b.Charging, b.Charge)
			}
		})
	}
}

func TestBirdTint(t *testing.T) {
	tests := []struct {
		charge int
		want   uint8
	}{
		{0, 0},
		{1, 2},
		{50, 127},
		{100, 254},
		{101, 255},
		{140, 255},
	}

	for _, tc := range tests {
		b := newTestBird()
		b.Charging = true
		b.Charge = tc.charge
		if got := b.Tint(); got != tc.want {
			t.Errorf("Tint() at charge %d = %d, expected %d", tc.charge, got, tc.want)
		}
	}
}
