package flood

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	BoardSize    int
	NumColors    int
	Board        string // Rows of color glyphs, upper case when flooded
	Palette      string // Color glyphs in session order
	MovesUsed    int
	MovesAllowed int
	CursorRow    int
	CursorCol    int
	Score        int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.State().Won:
		state = StateWon
	case g.State().GameOver:
		state = StateLost
	}

	palette := make([]rune, 0, g.session.NumColors())
	for _, c := range g.session.Palette() {
		palette = append(palette, c.Char())
	}

	return Snapshot{
		Tick:         g.tick,
		BoardSize:    g.session.BoardSize(),
		NumColors:    g.session.NumColors(),
		Board:        g.session.Board().String(),
		Palette:      string(palette),
		MovesUsed:    g.session.MovesUsed(),
		MovesAllowed: g.session.MovesAllowed(),
		CursorRow:    g.cursorRow,
		CursorCol:    g.cursorCol,
		Score:        g.session.Score(),
		State:        state,
	}
}
