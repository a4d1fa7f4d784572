// Package blaster implements a charge-shot arena game.
// A bird dodges bouncing bombs and destroys them with beams whose size,
// speed and score grow with how long fire was held. Holding too long
// overcharges the bird, which explodes and ends the session.
package blaster

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// SessionState is the top-level lifecycle of a game.
type SessionState int

const (
	StatePlaying    SessionState = iota // Normal frames
	StateOvercharge                     // The bird is exploding; input is ignored
	StateGameOver                       // Final screen is shown
	StateQuit                           // The player asked to leave
)

// String returns a human-readable name for the session state.
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateOvercharge:
		return "overcharge"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Reasons attached to EventGameOver.
const (
	ReasonCollision  = "collision"
	ReasonOvercharge = "overcharge"
)

// Game implements the blaster game logic.
type Game struct {
	cfg     config.BlasterConfig
	bounds  core.Bounds
	rng     *SimpleRNG
	sprites *Sprites
	bar     ChargeBar

	bird       *Bird
	bombs      []*Bomb
	beams      []*Beam
	explosions []*Explosion
	blast      *BigExplosion
	score      Score

	state          SessionState
	overchargeTick int // Overcharge frames elapsed, the triggering frame included
	gameOverLeft   int // Frames until Done; only counts when GameOverTicks > 0
	endReason      string
	tick           int
	events         []core.Event
}

// New creates a game with the default configuration.
func New() *Game {
	g, err := NewWithConfig(config.DefaultBlasterConfig())
	if err != nil {
		// The defaults are covered by tests; reaching this is a programming error.
		panic(fmt.Sprintf("blaster: invalid default config: %v", err))
	}
	return g
}

// NewWithConfig creates a game after validating cfg.
func NewWithConfig(cfg config.BlasterConfig) (*Game, error) {
	if cfg.Arena.BombCount <= 0 {
		return nil, ErrNoHazards
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		bounds:  core.Bounds{W: cfg.Arena.Width, H: cfg.Arena.Height},
		sprites: NewSprites(),
		bar:     ChargeBar{Danger: cfg.Charge.Danger},
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bird Blaster"
}

// Reset initializes or restarts the game. The seed fully determines bomb
// placement and the overcharge particle spread.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = NewSimpleRNG(cfg.Seed)

	g.bird = NewBird(g.cfg.Player, g.cfg.Charge)
	bombs, err := SpawnBombs(g.cfg.Arena.BombCount, g.rng, g.bounds, g.cfg.Bomb)
	if err != nil {
		// Validate guarantees a positive count and a bomb that fits.
		panic(fmt.Sprintf("blaster: spawn bombs: %v", err))
	}
	g.bombs = bombs
	g.beams = nil
	g.explosions = nil
	g.blast = nil
	g.score = Score{}

	g.state = StatePlaying
	g.overchargeTick = 0
	g.gameOverLeft = 0
	g.endReason = ""
	g.tick = 0
	g.events = g.events[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionQuit) {
		g.state = StateQuit
	}

	switch g.state {
	case StatePlaying:
		g.stepPlaying(in)
	case StateOvercharge:
		g.stepOvercharge()
	case StateGameOver:
		g.stepGameOver()
	case StateQuit:
		return core.StepResult{State: g.State()}
	}

	g.tick++
	return core.StepResult{State: g.State(), Events: slices.Clone(g.events)}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	// 1. Fire press/release transitions, in arrival order
	for _, ev := range in.Events {
		if ev.Action != core.ActionFire {
			continue
		}
		switch ev.Kind {
		case core.Press:
			g.bird.BeginCharge()
		case core.Release:
			if charge, ok := g.bird.ReleaseCharge(); ok {
				g.fire(charge)
			}
		}
	}

	// 2. Charge accumulation; crossing the limit hands the frame to the blast
	if charge, over := g.bird.AccumulateCharge(); over {
		g.beginOvercharge(charge)
		g.stepOvercharge()
		return
	}

	// 3. Beam vs bomb
	g.resolveHits()

	// 4-5. Drop finished effects, spent or departed beams, destroyed bombs
	g.explosions = slices.DeleteFunc(g.explosions, func(e *Explosion) bool { return !e.Visible() })
	g.beams = slices.DeleteFunc(g.beams, func(b *Beam) bool { return !b.Alive })
	g.beams = slices.DeleteFunc(g.beams, func(b *Beam) bool { return !g.bounds.Contains(b.Rect) })
	g.bombs = slices.DeleteFunc(g.bombs, func(b *Bomb) bool { return !b.Alive })

	// 6. Bomb vs bird
	for _, b := range g.bombs {
		if b.Rect.Intersects(g.bird.Rect) {
			g.endGame(ReasonCollision)
			return
		}
	}

	// 7. Movement
	for _, b := range g.bombs {
		b.Update(g.bounds)
	}
	g.bird.Move(in, g.bounds)
	for _, b := range g.beams {
		b.Update()
	}
	for _, e := range g.explosions {
		e.Update()
	}
}

// fire launches a beam at the given charge. A beam that cannot be built
// is reported as EventMisfire and the charge is lost.
func (g *Game) fire(charge int) {
	beam, err := NewBeam(g.bird, charge, g.cfg.Beam)
	if err != nil {
		cx, cy := g.bird.Rect.Center()
		g.emit(core.Event{Type: core.EventMisfire, X: cx, Y: cy, Value: charge, Reason: err.Error()})
		return
	}
	g.beams = append(g.beams, beam)
	cx, cy := beam.Rect.Center()
	g.emit(core.Event{Type: core.EventFire, X: cx, Y: cy, Value: charge})
}

// resolveHits pairs each live beam with the first live bomb it overlaps.
// Each beam and each bomb is consumed at most once.
func (g *Game) resolveHits() {
	for _, beam := range g.beams {
		if !beam.Alive {
			continue
		}
		for _, bomb := range g.bombs {
			if !bomb.Alive || !beam.Rect.Intersects(bomb.Rect) {
				continue
			}
			beam.Alive = false
			bomb.Alive = false

			cx, cy := bomb.Rect.Center()
			g.explosions = append(g.explosions, NewExplosion(cx, cy, beam.Charge,
				g.cfg.Effects.ExplosionTicks, g.cfg.Effects.ExplosionSize))
			pts := g.score.Add(beam.Charge)
			g.emit(core.Event{Type: core.EventKill, X: cx, Y: cy, Value: pts})
			break
		}
	}
}

func (g *Game) beginOvercharge(charge int) {
	g.state = StateOvercharge
	g.overchargeTick = 0
	cx, cy := g.bird.Rect.Center()
	g.blast = NewBigExplosion(cx, cy, charge-g.cfg.Charge.Limit, g.cfg.Effects.OverchargeTicks, g.rng)
	g.emit(core.Event{Type: core.EventOvercharge, X: cx, Y: cy, Value: charge})
}

// stepOvercharge runs one blast frame: bombs keep bouncing, the bird is
// gone and nothing can collide.
func (g *Game) stepOvercharge() {
	for _, b := range g.bombs {
		b.Update(g.bounds)
	}
	g.blast.Update()
	g.overchargeTick++
	if g.overchargeTick >= g.cfg.Effects.OverchargeTicks {
		g.endGame(ReasonOvercharge)
	}
}

func (g *Game) stepGameOver() {
	if g.gameOverLeft > 0 {
		g.gameOverLeft--
	}
}

func (g *Game) endGame(reason string) {
	g.state = StateGameOver
	g.endReason = reason
	g.gameOverLeft = g.cfg.Session.GameOverTicks
	cx, cy := g.bird.Rect.Center()
	g.emit(core.Event{Type: core.EventGameOver, X: cx, Y: cy, Value: g.score.Value(), Reason: reason})
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	done := g.state == StateQuit ||
		(g.state == StateGameOver && g.cfg.Session.GameOverTicks > 0 && g.gameOverLeft == 0)
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.state == StateGameOver,
		Done:     done,
	}
}

// Session returns the current lifecycle state.
func (g *Game) Session() SessionState {
	return g.state
}

// EndReason returns why the session ended, or "" while it is running.
func (g *Game) EndReason() string {
	return g.endReason
}

// Bird returns the player avatar.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Bombs returns the live bombs in spawn order.
func (g *Game) Bombs() []*Bomb {
	return g.bombs
}

// Beams returns the in-flight beams in firing order.
func (g *Game) Beams() []*Beam {
	return g.beams
}

// Explosions returns the active kill flashes.
func (g *Game) Explosions() []*Explosion {
	return g.explosions
}

// Blast returns the overcharge explosion, or nil if the bird has not overcharged.
func (g *Game) Blast() *BigExplosion {
	return g.blast
}

// Tick returns the number of frames stepped since Reset.
func (g *Game) Tick() int {
	return g.tick
}
