package core

import "fmt"

// Status is the derived outcome of a session.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Default regeneration cycles.
var (
	DefaultSizes       = []int{24, 20, 15, 12, 8}
	DefaultColorCounts = []int{6, 5, 4, 3, 2}
)

// SessionConfig holds the parameters a session is generated from.
type SessionConfig struct {
	BoardSize   int
	NumColors   int
	Sizes       []int // Board sizes cycled by Resized; DefaultSizes if empty
	ColorCounts []int // Color counts cycled by WithNextColorCount; DefaultColorCounts if empty
}

// Validate checks that the config can produce a playable session.
func (c SessionConfig) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfiguration, c.BoardSize)
	}
	if c.NumColors < 1 || c.NumColors > int(ColorCount) {
		return fmt.Errorf("%w: color count %d outside [1, %d]", ErrInvalidConfiguration, c.NumColors, ColorCount)
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: size cycle entry %d must be positive", ErrInvalidConfiguration, s)
		}
	}
	for _, n := range c.ColorCounts {
		if n < 1 || n > int(ColorCount) {
			return fmt.Errorf("%w: color cycle entry %d outside [1, %d]", ErrInvalidConfiguration, n, ColorCount)
		}
	}
	return nil
}

func (c SessionConfig) withDefaults() SessionConfig {
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes
	}
	if len(c.ColorCounts) == 0 {
		c.ColorCounts = DefaultColorCounts
	}
	return c
}

// MoveBudget returns the number of moves allowed for a board:
// the triangular number of the color count plus the board size.
func MoveBudget(boardSize, numColors int) int {
	return numColors*(numColors+1)/2 + boardSize
}

// Session is one game of Flood-It: a board plus the move counters.
// Regeneration (resize, color cycle, restart) returns a new Session and
// leaves the receiver untouched; only Click and ChooseColor mutate it.
type Session struct {
	cfg          SessionConfig
	rng          RNG
	board        *Board
	palette      []Color
	movesUsed    int
	movesAllowed int
	current      Color // Color of the flooded region
	target       Color // Color chosen by the last accepted move
}

// NewSession generates a fresh session from cfg.
func NewSession(cfg SessionConfig, rng RNG) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	palette, err := SelectPalette(BasePalette(), cfg.NumColors, rng)
	if err != nil {
		return nil, err
	}
	board, err := Generate(cfg.BoardSize, palette, rng)
	if err != nil {
		return nil, err
	}

	origin := board.cells[0].Color
	return &Session{
		cfg:          cfg,
		rng:          rng,
		board:        board,
		palette:      palette,
		movesAllowed: MoveBudget(cfg.BoardSize, cfg.NumColors),
		current:      origin,
		target:       origin,
	}, nil
}

// NewSessionFromBoard wraps an existing board, e.g. a fixture or replay.
// The palette is the set of colors present on the board, in base order.
// An out-of-range numColors falls back to the palette size.
func NewSessionFromBoard(board *Board, numColors int) *Session {
	present := make(map[Color]bool)
	for _, cell := range board.cells {
		present[cell.Color] = true
	}
	palette := make([]Color, 0, len(present))
	for _, c := range BasePalette() {
		if present[c] {
			palette = append(palette, c)
		}
	}
	if numColors < 1 || numColors > int(ColorCount) {
		numColors = len(palette)
	}

	origin := board.cells[0].Color
	return &Session{
		cfg: SessionConfig{
			BoardSize: board.size,
			NumColors: numColors,
		}.withDefaults(),
		board:        board,
		palette:      palette,
		movesAllowed: MoveBudget(board.size, numColors),
		current:      origin,
		target:       origin,
	}
}

// regenerate builds a new session with cfg, sharing the RNG stream.
// cfg is validated upstream, so generation cannot fail here.
func (s *Session) regenerate(cfg SessionConfig) *Session {
	rng := s.rng
	if rng == nil {
		rng = zeroRNG{}
	}
	next, err := NewSession(cfg, rng)
	if err != nil {
		panic(fmt.Sprintf("flood: regenerate: %v", err))
	}
	return next
}

// Resized returns a new session with the next board size in the cycle.
func (s *Session) Resized() *Session {
	cfg := s.cfg
	cfg.BoardSize = nextInCycle(cfg.Sizes, cfg.BoardSize)
	return s.regenerate(cfg)
}

// WithNextColorCount returns a new session with the next color count in the cycle.
func (s *Session) WithNextColorCount() *Session {
	cfg := s.cfg
	cfg.NumColors = nextInCycle(cfg.ColorCounts, cfg.NumColors)
	return s.regenerate(cfg)
}

// Restarted returns a new session with the same size and color count.
func (s *Session) Restarted() *Session {
	return s.regenerate(s.cfg)
}

// nextInCycle returns the entry after current, wrapping around.
// A value not in the cycle restarts at the first entry.
func nextInCycle(cycle []int, current int) int {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// Click plays the cell at (row, col). Returns false, consuming no move, if the
// budget is spent, the game is decided, the coordinates are off the board, the
// cell is already flooded, or the cell already has the flood color.
func (s *Session) Click(row, col int) bool {
	if s.movesUsed >= s.movesAllowed || s.Status() != StatusInProgress {
		return false
	}
	cell, err := s.board.CellAt(row, col)
	if err != nil {
		return false
	}
	if cell.Flooded || cell.Color == s.current {
		return false
	}

	s.movesUsed++
	s.target = cell.Color
	Propagate(s.board, s.target)
	s.current = s.board.cells[0].Color
	return true
}

// ChooseColor plays color c as if the first unflooded cell of that color,
// in row-major order, were clicked. Returns false if no such cell exists
// or the click is rejected.
func (s *Session) ChooseColor(c Color) bool {
	for i, cell := range s.board.cells {
		if !cell.Flooded && cell.Color == c {
			return s.Click(i/s.board.size, i%s.board.size)
		}
	}
	return false
}

// Status derives the outcome from the counters and the board.
func (s *Session) Status() Status {
	won := s.movesUsed <= s.movesAllowed && s.board.IsFullyFlooded()
	switch {
	case won:
		return StatusWon
	case s.movesUsed >= s.movesAllowed:
		return StatusLost
	default:
		return StatusInProgress
	}
}

// Score returns the points for a won session and 0 otherwise.
// Unused moves are worth more on larger, more colorful boards.
func (s *Session) Score() int {
	if s.Status() != StatusWon {
		return 0
	}
	return (s.movesAllowed - s.movesUsed + 1) * s.cfg.BoardSize * s.cfg.NumColors
}

// BoardSize returns the number of rows (and columns).
func (s *Session) BoardSize() int { return s.board.size }

// NumColors returns the configured color count.
func (s *Session) NumColors() int { return s.cfg.NumColors }

// MovesUsed returns the number of accepted moves.
func (s *Session) MovesUsed() int { return s.movesUsed }

// MovesAllowed returns the move budget.
func (s *Session) MovesAllowed() int { return s.movesAllowed }

// MovesLeft returns the remaining budget, never negative.
func (s *Session) MovesLeft() int {
	if s.movesUsed >= s.movesAllowed {
		return 0
	}
	return s.movesAllowed - s.movesUsed
}

// CurrentColor returns the color of the flooded region.
func (s *Session) CurrentColor() Color { return s.current }

// TargetColor returns the color chosen by the last accepted move.
func (s *Session) TargetColor() Color { return s.target }

// Palette returns a copy of the session palette.
func (s *Session) Palette() []Color {
	out := make([]Color, len(s.palette))
	copy(out, s.palette)
	return out
}

// Config returns the parameters the session was generated from.
func (s *Session) Config() SessionConfig { return s.cfg }

// CellAt returns the cell at (row, col).
func (s *Session) CellAt(row, col int) (Cell, error) {
	return s.board.CellAt(row, col)
}

// Board returns a copy of the board.
func (s *Session) Board() *Board { return s.board.Clone() }

// RenderModel is a read-only copy of everything needed to draw a session.
type RenderModel struct {
	BoardSize    int
	NumColors    int
	Palette      []Color
	CellColors   [][]Color
	Flooded      [][]bool
	MovesUsed    int
	MovesAllowed int
	CurrentColor Color
	Status       Status
}

// RenderModel returns a snapshot of the session for presentation.
func (s *Session) RenderModel() RenderModel {
	return RenderModel{
		BoardSize:    s.board.size,
		NumColors:    s.cfg.NumColors,
		Palette:      s.Palette(),
		CellColors:   s.board.Colors(),
		Flooded:      s.board.FloodedMask(),
		MovesUsed:    s.movesUsed,
		MovesAllowed: s.movesAllowed,
		CurrentColor: s.current,
		Status:       s.Status(),
	}
}

// zeroRNG always returns 0. Sessions built from a fixed board have no RNG;
// regenerating one yields a deterministic board.
type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }
