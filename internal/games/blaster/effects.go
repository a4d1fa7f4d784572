package blaster

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Effect tuning. Distances in world units, durations in ticks.
const (
	ParticleGravity = 0.3

	ShockwaveGrowth  = 15 // Radius added per tick until the maximum
	ShockwaveBase    = 200
	ShockwaveSpacing = 20 // Gap between concentric rings
	ShockwaveRings   = 3

	BaseParticles  = 100
	ParticleMinSpd = 5.0
	ParticleMaxSpd = 20.0
	ParticleMinSz  = 5
	ParticleMaxSz  = 15
	ParticleMinAge = 40
	ParticleMaxAge = 70
)

// explosionPalette holds the fire colors a particle may be born with.
var explosionPalette = [...]core.RGB{
	{R: 255, G: 100, B: 0},
	{R: 255, G: 50, B: 0},
	{R: 255, G: 200, B: 0},
	{R: 255, G: 0, B: 0},
	{R: 255, G: 150, B: 50},
}

// Particle is a single fragment of the overcharge blast.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.RGB
	Size    int
	Life    int
	MaxLife int
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Update ages the particle; a surviving particle falls under gravity and moves.
func (p *Particle) Update() {
	p.Life--
	if p.Life <= 0 {
		return
	}
	p.VY += ParticleGravity
	p.X += p.VX
	p.Y += p.VY
}

func (p *Particle) fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// CurrentSize shrinks linearly with remaining life, never below 1.
func (p *Particle) CurrentSize() int {
	return max(1, int(float64(p.Size)*p.fade()))
}

// CurrentColor darkens linearly with remaining life.
func (p *Particle) CurrentColor() core.RGB {
	return p.Color.Scale(p.fade())
}

// Ring is one shockwave circle to draw this frame.
type Ring struct {
	Radius    int
	Thickness int
	Color     core.RGB
}

// BigExplosion is the overcharge blast: a particle burst plus an expanding
// shockwave. Particle count and shockwave reach grow with the overshoot.
type BigExplosion struct {
	CX, CY    int
	Particles []*Particle
	Life      int
	Radius    int
	MaxRadius int

	growing bool // Whether the last Update expanded the shockwave
}

// NewBigExplosion creates a blast at (cx, cy). Overshoot is how far the
// charge went past the limit.
func NewBigExplosion(cx, cy, overshoot, life int, rng *SimpleRNG) *BigExplosion {
	n := max(0, BaseParticles+overshoot*2)
	e := &BigExplosion{
		CX:        cx,
		CY:        cy,
		Particles: make([]*Particle, 0, n),
		Life:      life,
		MaxRadius: max(0, ShockwaveBase+overshoot),
	}
	for i := 0; i < n; i++ {
		angle := rng.Angle()
		speed := rng.Uniform(ParticleMinSpd, ParticleMaxSpd)
		age := rng.IntRange(ParticleMinAge, ParticleMaxAge)
		e.Particles = append(e.Particles, &Particle{
			X:       float64(cx),
			Y:       float64(cy),
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Color:   explosionPalette[rng.Intn(len(explosionPalette))],
			Size:    rng.IntRange(ParticleMinSz, ParticleMaxSz),
			Life:    age,
			MaxLife: age,
		})
	}
	return e
}

// Update advances one tick: the shockwave grows until it reaches its maximum,
// dead particles are dropped and the rest move.
func (e *BigExplosion) Update() {
	e.Life--
	e.growing = e.Radius < e.MaxRadius
	if e.growing {
		e.Radius += ShockwaveGrowth
	}
	e.Particles = slices.DeleteFunc(e.Particles, func(p *Particle) bool { return !p.Alive() })
	for _, p := range e.Particles {
		p.Update()
	}
}

// Alpha is the shockwave opacity in [0, 1].
func (e *BigExplosion) Alpha() float64 {
	if e.MaxRadius <= 0 {
		return 0
	}
	return core.ClampF(1-float64(e.Radius)/float64(e.MaxRadius), 0, 1)
}

// Rings returns the shockwave circles visible this frame, outermost first.
// The shockwave only shows on frames where it grew.
func (e *BigExplosion) Rings() []Ring {
	alpha := e.Alpha()
	if !e.growing || alpha <= 0 {
		return nil
	}
	rings := make([]Ring, 0, ShockwaveRings)
	for i := 0; i < ShockwaveRings; i++ {
		r := e.Radius - i*ShockwaveSpacing
		if r <= 0 {
			continue
		}
		base := core.RGB{R: 255, G: uint8(200 - 50*i), B: 0}
		rings = append(rings, Ring{
			Radius:    r,
			Thickness: max(1, 5-i),
			Color:     base.Scale(alpha),
		})
	}
	return rings
}

// Explosion is the short flash left where a beam destroys a bomb.
type Explosion struct {
	CX, CY int
	Scale  float64
	Life   int
	Size   int // Unscaled diameter in world units
}

// ExplosionScale is the size multiplier for a kill made with a beam of charge.
func ExplosionScale(charge int) float64 {
	return 1 + float64(charge)/100*2
}

// NewExplosion creates a flash at (cx, cy) sized by the killing beam's charge.
func NewExplosion(cx, cy, charge, life, size int) *Explosion {
	return &Explosion{
		CX:    cx,
		CY:    cy,
		Scale: ExplosionScale(charge),
		Life:  life,
		Size:  size,
	}
}

// Update ages the explosion by one tick.
func (e *Explosion) Update() {
	e.Life--
}

// Visible reports whether the explosion should still be drawn.
func (e *Explosion) Visible() bool {
	return e.Life > 0
}

// Frame is the animation frame index, cycling through four images.
func (e *Explosion) Frame() int {
	return e.Life % 4
}

// Extent is the scaled diameter in world units.
func (e *Explosion) Extent() int {
	return int(float64(e.Size) * e.Scale)
}
