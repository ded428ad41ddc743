package core

import "strings"

// Color represents one of the base board colors.
type Color uint8

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// Hex returns the RGB value of the color as "#RRGGBB".
func (c Color) Hex() string {
	switch c {
	case ColorRed:
		return "#D91C3C"
	case ColorOrange:
		return "#F0750A"
	case ColorYellow:
		return "#EDD32B"
	case ColorGreen:
		return "#3ED433"
	case ColorBlue:
		return "#227AE6"
	case ColorPurple:
		return "#6930BF"
	default:
		return "#808080"
	}
}

// BrightHex returns the lighter shade used to mark flooded cells.
func (c Color) BrightHex() string {
	switch c {
	case ColorRed:
		return "#D95F74"
	case ColorOrange:
		return "#F29646"
	case ColorYellow:
		return "#F2E37E"
	case ColorGreen:
		return "#79D472"
	case ColorBlue:
		return "#629CE3"
	case ColorPurple:
		return "#8B67C2"
	default:
		return "#C0C0C0"
	}
}

// Valid reports whether c is one of the base colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a name or glyph to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// BasePalette returns the ordered set of all base colors.
func BasePalette() []Color {
	return []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
}
