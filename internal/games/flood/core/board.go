package core

import (
	"fmt"
	"strings"
	"unicode"
)

// NeighborKind tags what lies next to a cell in some direction.
type NeighborKind uint8

const (
	NeighborCell NeighborKind = iota // An in-bounds cell
	NeighborEdge                     // Past the board edge
)

// Neighbor is the cell adjacent to another cell in one direction.
// Row and Col are meaningful only when Kind is NeighborCell.
type Neighbor struct {
	Kind NeighborKind
	Row  int
	Col  int
}

// IsEdge returns true if the neighbor lies outside the board.
func (n Neighbor) IsEdge() bool {
	return n.Kind == NeighborEdge
}

// Board is a square grid of cells with 4-directional adjacency.
// Cells are stored in row-major order: index = row*size + col.
// The flooded cells always form one connected region containing (0,0).
type Board struct {
	size  int
	cells []Cell
}

// Generate creates a size×size board whose cells draw colors uniformly
// (with repetition) from palette. Only the origin starts flooded.
func Generate(size int, palette []Color, rng RNG) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfiguration, size)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidConfiguration)
	}

	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for i := range b.cells {
		b.cells[i].Color = palette[rng.Intn(len(palette))]
	}
	b.cells[0].Flooded = true
	return b, nil
}

// NewBoard creates a board from an explicit square color grid.
// Only the origin starts flooded.
func NewBoard(colors [][]Color) (*Board, error) {
	size := len(colors)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty color grid", ErrInvalidConfiguration)
	}

	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for row, line := range colors {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfiguration, row, len(line), size)
		}
		for col, c := range line {
			if !c.Valid() {
				return nil, fmt.Errorf("%w: invalid color %d at (%d,%d)", ErrInvalidConfiguration, c, row, col)
			}
			b.cells[row*size+col].Color = c
		}
	}
	b.cells[0].Flooded = true
	return b, nil
}

// ParseBoard builds a board from rows of color glyphs, e.g. "RGB".
// Upper- and lower-case glyphs are accepted; flooded state is not parsed.
func ParseBoard(rows ...string) (*Board, error) {
	colors := make([][]Color, len(rows))
	for i, line := range rows {
		for _, r := range line {
			c, ok := ParseColor(string(r))
			if !ok {
				return nil, fmt.Errorf("%w: unknown color glyph %q", ErrInvalidConfiguration, r)
			}
			colors[i] = append(colors[i], c)
		}
	}
	return NewBoard(colors)
}

// Size returns the number of rows (and columns) of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// CellAt returns the cell at (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	return b.cells[b.index(row, col)], nil
}

// SetColor changes the color of the cell at (row, col).
// The flooded state is left untouched.
func (b *Board) SetColor(row, col int, c Color) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	b.cells[b.index(row, col)].Color = c
	return nil
}

// Neighbor returns what lies one step from (row, col) in direction d.
func (b *Board) Neighbor(row, col int, d Dir) Neighbor {
	dr, dc := d.Delta()
	r, c := row+dr, col+dc
	if !b.InBounds(r, c) {
		return Neighbor{Kind: NeighborEdge}
	}
	return Neighbor{Kind: NeighborCell, Row: r, Col: c}
}

// Neighbors returns the four neighbors of (row, col) in AllDirs order.
func (b *Board) Neighbors(row, col int) [4]Neighbor {
	var ns [4]Neighbor
	for i, d := range AllDirs {
		ns[i] = b.Neighbor(row, col, d)
	}
	return ns
}

// sameColor reports whether the neighbor is a cell of color c.
// Edge neighbors never match.
func (b *Board) sameColor(n Neighbor, c Color) bool {
	if n.IsEdge() {
		return false
	}
	return b.cells[b.index(n.Row, n.Col)].Color == c
}

// flood marks the neighbor flooded and reports whether it was newly flooded.
// Edge neighbors are ignored.
func (b *Board) flood(n Neighbor) bool {
	if n.IsEdge() {
		return false
	}
	cell := &b.cells[b.index(n.Row, n.Col)]
	if cell.Flooded {
		return false
	}
	cell.Flooded = true
	return true
}

// IsFullyFlooded returns true if every cell has the origin's color.
// Cells of that color outside the flooded set count, as they can no longer
// be clicked.
func (b *Board) IsFullyFlooded() bool {
	origin := b.cells[0].Color
	for _, cell := range b.cells {
		if cell.Color != origin {
			return false
		}
	}
	return true
}

// FloodedCount returns the number of flooded cells.
func (b *Board) FloodedCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Flooded {
			count++
		}
	}
	return count
}

// Colors returns a copy of the cell colors, indexed [row][col].
func (b *Board) Colors() [][]Color {
	out := make([][]Color, b.size)
	for row := range out {
		out[row] = make([]Color, b.size)
		for col := range out[row] {
			out[row][col] = b.cells[b.index(row, col)].Color
		}
	}
	return out
}

// FloodedMask returns a copy of the flooded flags, indexed [row][col].
func (b *Board) FloodedMask() [][]bool {
	out := make([][]bool, b.size)
	for row := range out {
		out[row] = make([]bool, b.size)
		for col := range out[row] {
			out[row][col] = b.cells[b.index(row, col)].Flooded
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:  b.size,
		cells: cells,
	}
}

// Equal returns true if two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as rows of color glyphs.
// Flooded cells are upper-case, the rest lower-case.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size)
	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.size; col++ {
			cell := b.cells[b.index(row, col)]
			r := cell.Color.Char()
			if !cell.Flooded {
				r = unicode.ToLower(r)
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
