package flood

import (
	"fmt"

	platformcore "github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/flood/core"
)

const (
	msgPlaying = "Click a cell or press 1-%d to flood from the top-left corner."
	msgWon     = "You win! Press 'r' to restart with this board size."
	msgLost    = "Sorry, you ran out of clicks. Press 'r' to restart with this board size."
	helpLine   = "arrows move  enter flood  n size  c colors  r restart  p pause  q quit"
)

// screenColors maps board colors to screen colors, indexed by core.Color.
var screenColors = [core.ColorCount]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorPurple: platformcore.ColorPurple,
}

// ScreenColor returns the screen color used to draw a board color.
func ScreenColor(c core.Color) platformcore.Color {
	if !c.Valid() {
		return platformcore.ColorDefault
	}
	return screenColors[c]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	m := g.session.RenderModel()
	g.renderHUD(dst, m)
	g.renderBoard(dst, m)
	g.renderFooter(dst, m)

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows what the board needs and how to get a smaller one.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	need := fmt.Sprintf("A %dx%d board needs %dx%d", g.layout.BoardSize, g.layout.BoardSize, g.layout.Panel.W, g.layout.Panel.H)
	dst.DrawTextCentered(y, need)
	dst.DrawTextCentered(y+1, "Resize the terminal or press N for the next size")
}

// renderHUD draws the title, move counter, buttons and palette legend.
func (g *Game) renderHUD(dst *platformcore.Screen, m core.RenderModel) {
	l := g.layout

	title := fmt.Sprintf("FLOOD-IT  %dx%d  %d colors", m.BoardSize, m.BoardSize, m.NumColors)
	dst.DrawTextColor(l.Panel.X, 0, title, platformcore.ColorWhite)

	moves := fmt.Sprintf("Moves %d/%d", m.MovesUsed, m.MovesAllowed)
	movesColor := platformcore.ColorWhite
	if m.MovesAllowed-m.MovesUsed <= 2 && m.Status == core.StatusInProgress {
		movesColor = platformcore.ColorBrightRed
	}
	dst.DrawTextColor(l.Panel.Right()-len(moves), 0, moves, movesColor)

	dst.DrawTextColor(l.SizeButton.X, l.SizeButton.Y, sizeButtonLabel, platformcore.ColorCyan)
	dst.DrawTextColor(l.ColorsButton.X, l.ColorsButton.Y, colorsButtonLabel, platformcore.ColorCyan)

	x := l.LegendX
	for i, c := range m.Palette {
		dst.DrawTextColor(x, 1, fmt.Sprintf("%d", i+1), platformcore.ColorGray)
		dst.SetCell(x+1, 1, g.cfg.Display.CellRune(), ScreenColor(c))
		x += 3
	}
}

// renderBoard draws the cells, flooded cells in their brighter variant.
func (g *Game) renderBoard(dst *platformcore.Screen, m core.RenderModel) {
	cellRune := g.cfg.Display.CellRune()
	floodedRune := g.cfg.Display.FloodedRune()

	for row := range m.BoardSize {
		for col := range m.BoardSize {
			color := ScreenColor(m.CellColors[row][col])
			glyph := cellRune
			if m.Flooded[row][col] {
				color = color.Bright()
				glyph = floodedRune
			}
			if g.cfg.Display.ShowCursor && row == g.cursorRow && col == g.cursorCol && m.Status == core.StatusInProgress {
				glyph = '▒'
			}

			x, y := g.layout.CellOrigin(row, col)
			for i := range g.layout.CellW {
				dst.SetCell(x+i, y, glyph, color)
			}
		}
	}
}

// renderFooter draws the status message and key help.
func (g *Game) renderFooter(dst *platformcore.Screen, m core.RenderModel) {
	var msg string
	color := platformcore.ColorGray
	switch m.Status {
	case core.StatusWon:
		msg = msgWon
		color = platformcore.ColorBrightGreen
	case core.StatusLost:
		msg = msgLost
		color = platformcore.ColorBrightRed
	default:
		msg = fmt.Sprintf(msgPlaying, len(m.Palette))
	}

	drawCentered(dst, g.layout.MessageY, msg, color)
	drawCentered(dst, g.layout.HelpY, helpLine, platformcore.ColorGray)
}

// drawCentered draws colored text centered on the whole screen width.
func drawCentered(dst *platformcore.Screen, y int, text string, c platformcore.Color) {
	x := platformcore.Max((dst.Width()-len(text))/2, 0)
	dst.DrawTextColor(x, y, text, c)
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, len(line))
	}

	centerX := g.layout.Board.X + g.layout.Board.W/2
	centerY := g.layout.Board.Y + g.layout.Board.H/2
	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
