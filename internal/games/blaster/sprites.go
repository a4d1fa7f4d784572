package blaster

import "math"

// Direction is a unit step on each axis, components in {-1, 0, 1}.
// Screen coordinates: +DY points down.
type Direction struct {
	DX, DY int
}

// Eight facing directions plus the zero vector.
var (
	DirNone      = Direction{0, 0}
	DirRight     = Direction{1, 0}
	DirUpRight   = Direction{1, -1}
	DirUp        = Direction{0, -1}
	DirUpLeft    = Direction{-1, -1}
	DirLeft      = Direction{-1, 0}
	DirDownLeft  = Direction{-1, 1}
	DirDown      = Direction{0, 1}
	DirDownRight = Direction{1, 1}
)

// IsZero reports whether d has no component on either axis.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Angle returns the direction in radians, counter-clockwise from +X with
// the Y axis flipped so that "up" on screen is a positive angle.
func (d Direction) Angle() float64 {
	return math.Atan2(float64(-d.DY), float64(d.DX))
}

// Sprites maps directions and effect frames to glyphs.
// Built once by NewSprites and never mutated afterwards, so a single value
// can be shared between games.
type Sprites struct {
	bird      map[Direction]rune
	beam      map[Direction]rune
	explosion [4]rune
	bomb      rune
}

// NewSprites builds the glyph table.
func NewSprites() *Sprites {
	return &Sprites{
		bird: map[Direction]rune{
			DirRight:     '→',
			DirUpRight:   '↗',
			DirUp:        '↑',
			DirUpLeft:    '↖',
			DirLeft:      '←',
			DirDownLeft:  '↙',
			DirDown:      '↓',
			DirDownRight: '↘',
		},
		beam: map[Direction]rune{
			DirRight:     '━',
			DirLeft:      '━',
			DirUp:        '┃',
			DirDown:      '┃',
			DirUpRight:   '╱',
			DirDownLeft:  '╱',
			DirUpLeft:    '╲',
			DirDownRight: '╲',
		},
		explosion: [4]rune{'✶', '✷', '✸', '✹'},
		bomb:      '●',
	}
}

// Bird returns the bird glyph for a facing. Unknown facings fall back to right.
func (s *Sprites) Bird(d Direction) rune {
	if r, ok := s.bird[d]; ok {
		return r
	}
	return s.bird[DirRight]
}

// Beam returns the beam glyph for a travel direction.
func (s *Sprites) Beam(d Direction) rune {
	if r, ok := s.beam[d]; ok {
		return r
	}
	return s.beam[DirRight]
}

// Explosion returns the glyph for animation frame i (wraps).
func (s *Sprites) Explosion(i int) rune {
	n := len(s.explosion)
	return s.explosion[((i%n)+n)%n]
}

// Bomb returns the bomb glyph.
func (s *Sprites) Bomb() rune {
	return s.bomb
}

// Particle picks a glyph by current particle size.
func (s *Sprites) Particle(size int) rune {
	switch {
	case size >= 10:
		return '●'
	case size >= 5:
		return '•'
	default:
		return '·'
	}
}
