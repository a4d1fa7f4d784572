package blaster

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Minimum terminal size the arena can be drawn in.
const (
	MinCols = 40
	MinRows = 12
)

const barCells = 20 // Charge bar width in cells

var (
	birdColor    = core.RGB{R: 255, G: 210, B: 0}
	gameOverFace = "(T_T)"
)

// viewport projects world coordinates onto a cols×rows cell grid.
type viewport struct {
	cols, rows     int
	worldW, worldH int
}

func (v viewport) point(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(v.cols) / float64(v.worldW)))
	cy := int(math.Floor(y * float64(v.rows) / float64(v.worldH)))
	return cx, cy
}

// rect maps a world rectangle to cells. Anything with area covers at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.point(float64(r.X), float64(r.Y))
	x1, y1 := v.point(float64(r.Right()), float64(r.Bottom()))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen. The bottom row is the
// status line; everything above it is the arena.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinCols || dst.Height() < MinRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if g.bird == nil {
		return
	}

	vp := viewport{cols: dst.Width(), rows: dst.Height() - 1, worldW: g.bounds.W, worldH: g.bounds.H}

	for _, b := range g.bombs {
		g.drawBomb(dst, vp, b)
	}

	switch g.state {
	case StatePlaying:
		g.drawBird(dst, vp)
		g.drawBeams(dst, vp)
		g.drawExplosions(dst, vp)
		g.drawChargeBar(dst)
	case StateOvercharge:
		g.drawBlast(dst, vp)
	case StateGameOver:
		g.drawGameOver(dst)
	}

	g.drawStatus(dst)
}

func (g *Game) drawBomb(dst *core.Screen, vp viewport, b *Bomb) {
	r := vp.rect(b.Rect)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, g.sprites.Bomb(), core.ColorRed)
		}
	}
}

func (g *Game) drawBird(dst *core.Screen, vp viewport) {
	// Red tint: green channel drains as charge rises
	tint := g.bird.Tint()
	color := birdColor
	color.G = uint8(int(birdColor.G) * (255 - int(tint)) / 255)

	r := vp.rect(g.bird.Rect)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetRGB(x, y, '▓', color)
		}
	}
	cx, cy := r.Center()
	dst.SetRGB(cx, cy, g.sprites.Bird(g.bird.Facing), color)
}

func (g *Game) drawBeams(dst *core.Screen, vp viewport) {
	for _, b := range g.beams {
		color := core.ColorBrightCyan
		if g.bar.InDanger(b.Charge) {
			color = core.ColorBrightMagenta
		}
		r := vp.rect(b.Rect)
		glyph := g.sprites.Beam(b.Dir)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

func (g *Game) drawExplosions(dst *core.Screen, vp viewport) {
	for _, e := range g.explosions {
		if !e.Visible() {
			continue
		}
		size := e.Extent()
		r := vp.rect(core.RectAt(e.CX, e.CY, size, size))
		glyph := g.sprites.Explosion(e.Frame())
		color := core.ColorYellow
		if e.Frame()%2 == 1 {
			color = core.ColorOrange
		}
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

func (g *Game) drawBlast(dst *core.Screen, vp viewport) {
	if g.blast == nil {
		return
	}

	for _, ring := range g.blast.Rings() {
		drawRing(dst, vp, g.blast.CX, g.blast.CY, ring)
	}

	for _, p := range g.blast.Particles {
		if !p.Alive() {
			continue
		}
		x, y := vp.point(p.X, p.Y)
		dst.SetRGB(x, y, g.sprites.Particle(p.CurrentSize()), p.CurrentColor())
	}
}

// drawRing plots a circle outline, sampling densely enough to leave no gaps
// at the current cell size.
func drawRing(dst *core.Screen, vp viewport, cx, cy int, ring Ring) {
	glyph := '·'
	if ring.Thickness >= 3 {
		glyph = '•'
	}
	cellW := float64(vp.worldW) / float64(vp.cols)
	steps := core.Max(16, int(2*math.Pi*float64(ring.Radius)/cellW)*2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := vp.point(float64(cx)+float64(ring.Radius)*math.Cos(a), float64(cy)+float64(ring.Radius)*math.Sin(a))
		dst.SetRGB(x, y, glyph, ring.Color)
	}
}

func (g *Game) drawChargeBar(dst *core.Screen) {
	charge := g.bird.Charge
	if !g.bird.Charging || !g.bar.Visible(charge) {
		return
	}

	x0 := (dst.Width() - barCells - 2) / 2
	y := 1
	dst.SetColored(x0, y, '▕', core.ColorWhite)
	fill := g.bar.Fill(charge, barCells)
	color := g.bar.Color(charge, g.tick)
	for i := 0; i < barCells; i++ {
		if i < fill {
			dst.SetColored(x0+1+i, y, '█', color)
		} else {
			dst.SetColored(x0+1+i, y, '░', core.ColorGray)
		}
	}
	dst.SetColored(x0+barCells+1, y, '▏', core.ColorWhite)

	if g.bar.InDanger(charge) {
		dst.DrawTextColored(x0+barCells+3, y, "DANGER!", core.ColorBrightRed)
	}
}

func (g *Game) drawStatus(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawTextColored(1, y, fmt.Sprintf("Score: %d", g.score.Value()), core.ColorBrightBlue)

	if g.state == StatePlaying && g.bird.Charging {
		label := fmt.Sprintf("Charge: %d", g.bird.Charge)
		dst.DrawText(dst.Width()-len(label)-1, y, label)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	hint := "R to restart  |  Q to quit"
	if g.cfg.Session.GameOverTicks > 0 {
		secs := float64(g.gameOverLeft) / float64(g.cfg.Arena.TickRate)
		hint = fmt.Sprintf("Closing in %.1fs  |  R to restart", secs)
	}
	drawCenteredMessage(dst, "GameOver", gameOverFace, fmt.Sprintf("Score: %d", g.score.Value()), hint)
}

// drawCenteredMessage draws a boxed block of lines in the middle of the arena.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - 1 - boxH) / 2

	box := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightRed
		}
		lx := x + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, y+1+i, l, color)
	}
}
