package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorRGB // Cell carries a 24-bit color in Cell.RGB
)

// RGB is a 24-bit color used for effects that fade smoothly (particles, tints).
type RGB struct {
	R, G, B uint8
}

// Scale returns the color with every channel multiplied by f, clamped to [0, 1].
func (c RGB) Scale(f float64) RGB {
	f = ClampF(f, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}
