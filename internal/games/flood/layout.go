package flood

import platformcore "github.com/vovakirdan/floodit/internal/core"

const (
	hudRows    = 2  // title line + button line above the board
	footerRows = 2  // message line + help line below the board
	minPanelW  = 50 // width of the HUD lines
)

const (
	sizeButtonLabel   = "[New Size]"
	colorsButtonLabel = "[New Colors]"
)

// HitKind identifies what a screen position lands on.
type HitKind int

const (
	HitNone HitKind = iota
	HitCell
	HitSizeButton
	HitColorsButton
)

// Hit is the result of hit testing a screen position.
type Hit struct {
	Kind     HitKind
	Row, Col int // Set for HitCell
}

// Layout places the HUD, board and footer on the screen and maps screen
// positions back to cells and buttons.
type Layout struct {
	Panel        platformcore.Rect // Everything the game draws
	Board        platformcore.Rect // Cell area
	SizeButton   platformcore.Rect
	ColorsButton platformcore.Rect
	LegendX      int // Start of the palette legend on the button line
	MessageY     int
	HelpY        int

	CellW     int
	BoardSize int
}

// NewLayout computes a layout for a boardSize x boardSize board with cells
// cellW columns wide, centered horizontally on a screenW wide screen.
func NewLayout(screenW, boardSize, cellW int) Layout {
	cellW = platformcore.Max(cellW, 1)
	boardW := boardSize * cellW
	panelW := platformcore.Max(boardW, minPanelW)
	x0 := platformcore.Max((screenW-panelW)/2, 0)

	l := Layout{
		Panel:     platformcore.NewRect(x0, 0, panelW, hudRows+boardSize+footerRows),
		Board:     platformcore.NewRect(x0+(panelW-boardW)/2, hudRows, boardW, boardSize),
		CellW:     cellW,
		BoardSize: boardSize,
	}
	l.SizeButton = platformcore.NewRect(x0, 1, len(sizeButtonLabel), 1)
	l.ColorsButton = platformcore.NewRect(l.SizeButton.Right()+1, 1, len(colorsButtonLabel), 1)
	l.LegendX = l.ColorsButton.Right() + 2
	l.MessageY = l.Board.Bottom()
	l.HelpY = l.MessageY + 1
	return l
}

// Fits reports whether the whole layout is visible on a screenW x screenH screen.
func (l Layout) Fits(screenW, screenH int) bool {
	return l.Panel.Right() <= screenW && l.Panel.Bottom() <= screenH
}

// CellAtPoint maps a screen position to the board cell under it.
func (l Layout) CellAtPoint(x, y int) (row, col int, ok bool) {
	if !l.Board.Contains(x, y) {
		return 0, 0, false
	}
	return y - l.Board.Y, (x - l.Board.X) / l.CellW, true
}

// CellOrigin returns the screen position of the top-left character of a cell.
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return l.Board.X + col*l.CellW, l.Board.Y + row
}

// HitTest reports what is under the screen position (x, y).
func (l Layout) HitTest(x, y int) Hit {
	if row, col, ok := l.CellAtPoint(x, y); ok {
		return Hit{Kind: HitCell, Row: row, Col: col}
	}
	switch {
	case l.SizeButton.Contains(x, y):
		return Hit{Kind: HitSizeButton}
	case l.ColorsButton.Contains(x, y):
		return Hit{Kind: HitColorsButton}
	}
	return Hit{Kind: HitNone}
}
