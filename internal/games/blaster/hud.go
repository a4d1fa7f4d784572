package blaster

import "github.com/vovakirdan/tui-blaster/internal/core"

// blinkTicks is the half-period of the danger blink (100ms at 50fps).
const blinkTicks = 5

// KillPoints is the score for destroying a bomb with a beam of the given
// charge: 100 * (1 + charge/50), computed exactly in integers.
func KillPoints(charge int) int {
	return 100 + 2*max(0, charge)
}

// Score is the running total. It only ever grows.
type Score struct {
	value int
}

// Add credits a kill and returns the points awarded.
func (s *Score) Add(charge int) int {
	pts := KillPoints(charge)
	s.value += pts
	return pts
}

// Value returns the current total.
func (s Score) Value() int {
	return s.value
}

// ChargeBar describes the charge meter. Fill saturates at Danger; above it
// the bar blinks a warning.
type ChargeBar struct {
	Danger int
}

// Visible reports whether the bar is shown for this charge.
func (c ChargeBar) Visible(charge int) bool {
	return charge > 0
}

// Fill returns how many of width cells are filled.
func (c ChargeBar) Fill(charge, width int) int {
	if c.Danger <= 0 {
		return width
	}
	return core.Max(0, core.Min(width, width*charge/c.Danger))
}

// InDanger reports whether the charge is past the warning threshold.
func (c ChargeBar) InDanger(charge int) bool {
	return charge > c.Danger
}

// Color picks the fill color. In danger the bar alternates red and orange.
func (c ChargeBar) Color(charge, tick int) core.Color {
	if !c.InDanger(charge) {
		return core.ColorGreen
	}
	if (tick/blinkTicks)%2 == 0 {
		return core.ColorRed
	}
	return core.ColorOrange
}
