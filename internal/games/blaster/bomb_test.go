package blaster

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

func TestNewBombSpawnsInside(t *testing.T) {
	cfg := config.DefaultBlasterConfig().Bomb

	for seed := int64(1); seed <= 200; seed++ {
		rng := NewSimpleRNG(seed)
		b, err := NewBomb(rng, arena, cfg)
		if err != nil {
			t.Fatalf("seed %d: NewBomb() failed: %v", seed, err)
		}
		if !arena.Contains(b.Rect) {
			t.Fatalf("seed %d: bomb %+v spawned outside the arena", seed, b.Rect)
		}
		if b.VX != 5 || b.VY != 5 || b.Radius != 10 || !b.Alive {
			t.Fatalf("seed %d: unexpected bomb %+v", seed, b)
		}
	}
}

func TestSpawnBombs(t *testing.T) {
	cfg := config.DefaultBlasterConfig().Bomb

	bombs, err := SpawnBombs(5, NewSimpleRNG(7), arena, cfg)
	if err != nil {
		t.Fatalf("SpawnBombs() failed: %v", err)
	}
	if len(bombs) != 5 {
		t.Errorf("got %d bombs, expected 5", len(bombs))
	}

	if _, err := SpawnBombs(0, NewSimpleRNG(7), arena, cfg); !errors.Is(err, ErrNoHazards) {
		t.Errorf("expected ErrNoHazards for zero bombs, got %v", err)
	}
}

func TestNewBombRejectsOversizedBomb(t *testing.T) {
	cfg := config.BombConfig{Radius: 20, Speed: 5}
	_, err := NewBomb(NewSimpleRNG(1), core.Bounds{W: 30, H: 100}, cfg)
	if !errors.Is(err, ErrDegenerateRect) {
		t.Errorf("expected ErrDegenerateRect, got %v", err)
	}
}

func TestBombLateBounce(t *testing.T) {
	b := &Bomb{Rect: core.NewRect(1075, 300, 20, 20), VX: 5, VY: 5, Radius: 10, Alive: true}

	// Inside: keeps going and touches the wall
	b.Update(arena)
	if b.Rect.X != 1080 || b.VX != 5 {
		t.Fatalf("after 1 update: x=%d vx=%d", b.Rect.X, b.VX)
	}

	// Still inside at the check, so it moves one step past the wall
	b.Update(arena)
	if b.Rect.X != 1085 || b.VX != 5 {
		t.Fatalf("after 2 updates: x=%d vx=%d", b.Rect.X, b.VX)
	}

	// Now outside: velocity flips before the move
	b.Update(arena)
	if b.Rect.X != 1080 || b.VX != -5 {
		t.Fatalf("after 3 updates: x=%d vx=%d", b.Rect.X, b.VX)
	}
}

func TestBombBouncesPerAxis(t *testing.T) {
	b := &Bomb{Rect: core.NewRect(500, -5, 20, 20), VX: 5, VY: -5, Radius: 10, Alive: true}
	b.Update(arena)

	if b.VX != 5 {
		t.Errorf("x velocity should not flip, got %d", b.VX)
	}
	if b.VY != 5 || b.Rect.Y != 0 {
		t.Errorf("y should bounce off the top, vy=%d y=%d", b.VY, b.Rect.Y)
	}
}

func TestBombsStayNearArena(t *testing.T) {
	cfg := config.DefaultBlasterConfig().Bomb
	bombs, err := SpawnBombs(5, NewSimpleRNG(99), arena, cfg)
	if err != nil {
		t.Fatal(err)
	}

	for tick := 0; tick < 2000; tick++ {
		for _, b := range bombs {
			b.Update(arena)
			if b.Rect.X < -cfg.Speed || b.Rect.Right() > arena.W+cfg.Speed ||
				b.Rect.Y < -cfg.Speed || b.Rect.Bottom() > arena.H+cfg.Speed {
				t.Fatalf("tick %d: bomb escaped to %+v", tick, b.Rect)
			}
		}
	}
}
