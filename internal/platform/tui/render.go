package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/flood"
	floodcore "github.com/vovakirdan/floodit/internal/games/flood/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

// buildColorStyles takes board colors from the flood palette so the screen
// shows exactly the RGB values the game defines.
func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
	for _, c := range floodcore.BasePalette() {
		sc := flood.ScreenColor(c)
		styles[sc] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		styles[sc.Bright()] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.BrightHex()))
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
