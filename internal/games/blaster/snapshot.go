package blaster

// EntitySnapshot is the position and velocity of one moving object.
type EntitySnapshot struct {
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
	VX int `yaml:"vx"`
	VY int `yaml:"vy"`
}

// BeamSnapshot adds the firing charge and hitbox size to an entity.
type BeamSnapshot struct {
	EntitySnapshot `yaml:",inline"`
	W              int `yaml:"w"`
	H              int `yaml:"h"`
	Charge         int `yaml:"charge"`
}

// Snapshot captures the complete game state for determinism testing and
// headless runs.
type Snapshot struct {
	Tick        int              `yaml:"tick"`
	State       string           `yaml:"state"`
	EndReason   string           `yaml:"end_reason,omitempty"`
	Score       int              `yaml:"score"`
	BirdX       int              `yaml:"bird_x"`
	BirdY       int              `yaml:"bird_y"`
	FacingX     int              `yaml:"facing_x"`
	FacingY     int              `yaml:"facing_y"`
	Charge      int              `yaml:"charge"`
	Charging    bool             `yaml:"charging"`
	Bombs       []EntitySnapshot `yaml:"bombs"`
	Beams       []BeamSnapshot   `yaml:"beams"`
	Explosions  int              `yaml:"explosions"`
	Particles   int              `yaml:"particles"`
	BlastRadius int              `yaml:"blast_radius"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		State:      g.state.String(),
		EndReason:  g.endReason,
		Score:      g.score.Value(),
		Explosions: len(g.explosions),
		Bombs:      make([]EntitySnapshot, 0, len(g.bombs)),
		Beams:      make([]BeamSnapshot, 0, len(g.beams)),
	}

	if g.bird != nil {
		snap.BirdX, snap.BirdY = g.bird.Rect.X, g.bird.Rect.Y
		snap.FacingX, snap.FacingY = g.bird.Facing.DX, g.bird.Facing.DY
		snap.Charge = g.bird.Charge
		snap.Charging = g.bird.Charging
	}

	for _, b := range g.bombs {
		snap.Bombs = append(snap.Bombs, EntitySnapshot{X: b.Rect.X, Y: b.Rect.Y, VX: b.VX, VY: b.VY})
	}
	for _, b := range g.beams {
		snap.Beams = append(snap.Beams, BeamSnapshot{
			EntitySnapshot: EntitySnapshot{X: b.Rect.X, Y: b.Rect.Y, VX: b.VX, VY: b.VY},
			W:              b.Rect.W,
			H:              b.Rect.H,
			Charge:         b.Charge,
		})
	}

	if g.blast != nil {
		snap.Particles = len(g.blast.Particles)
		snap.BlastRadius = g.blast.Radius
	}

	return snap
}

// Hash returns a hash of the snapshot for quick comparison.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)              //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BirdX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BirdY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Charge)      //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Explosions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Particles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.BlastRadius) //#nosec G115 -- hash computation
	for _, c := range s.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, b := range s.Bombs {
		h = h*31 + uint64(b.X)  //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Y)  //#nosec G115 -- hash computation
		h = h*31 + uint64(b.VX) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.VY) //#nosec G115 -- hash computation
	}
	for _, b := range s.Beams {
		h = h*31 + uint64(b.X)      //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Y)      //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Charge) //#nosec G115 -- hash computation
	}
	return h
}
