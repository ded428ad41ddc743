package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a true-color style.
type Color uint8

// Predefined colors for the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorBrightRed
	ColorBrightOrange
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightPurple
	ColorWhite
	ColorGray
	ColorCyan
)

// Bright returns the lighter variant of a board color.
// Colors without a variant are returned unchanged.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorPurple {
		return c + (ColorBrightRed - ColorRed)
	}
	return c
}
