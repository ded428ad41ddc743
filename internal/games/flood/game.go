// Package flood provides the Flood-It puzzle game for the platform.
package flood

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/floodit/internal/config"
	platformcore "github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/flood/core"
	"github.com/vovakirdan/floodit/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "flood"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset config.DifficultyPreset

// sizeOverride and colorsOverride take precedence over config and preset when > 0
var (
	sizeOverride   int
	colorsOverride int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetOverrides forces the starting board size and color count. Zero keeps
// the configured value.
func SetOverrides(size, colors int) {
	sizeOverride = size
	colorsOverride = colors
}

// ClearOptions drops the config path, preset and overrides set by the CLI,
// so new games start from the config files alone.
func ClearOptions() {
	configPath = ""
	difficultyPreset = ""
	sizeOverride, colorsOverride = 0, 0
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Flood-It session to the platform: it turns input frames into
// domain actions and draws the session into a screen buffer.
type Game struct {
	rng     *rand.Rand
	session *core.Session
	cfg     config.FloodConfig
	layout  Layout

	screenW int
	screenH int

	preset config.DifficultyPreset // Per-instance preset, wins over the package-level one

	tick      uint64
	cursorRow int
	cursorCol int
	paused    bool
	tooSmall  bool
}

// New creates a new Flood-It game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// SetPreset selects a difficulty preset for this instance only.
// It takes effect on the next Reset.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flood-It"
}

// Reset loads configuration and starts a new session.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	cfg, err := config.LoadFlood(configPath)
	if err != nil {
		cfg = config.DefaultFloodConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyFloodPreset(&cfg, preset)
	}
	if sizeOverride > 0 {
		cfg.Board.Size = sizeOverride
	}
	if colorsOverride > 0 {
		cfg.Board.Colors = colorsOverride
	}
	if cfg.Validate() != nil {
		cfg = config.DefaultFloodConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tick = 0
	g.paused = false
	g.cursorRow, g.cursorCol = 0, 0

	session, err := core.NewSession(SessionConfig(cfg), g.rng)
	if err != nil {
		// Validated above; only reachable if the config and core disagree.
		cfg = config.DefaultFloodConfig()
		g.cfg = cfg
		session, err = core.NewSession(SessionConfig(cfg), g.rng)
		if err != nil {
			panic(fmt.Sprintf("flood: default config rejected: %v", err))
		}
	}
	g.replace(session)
}

// SessionConfig converts a game config into the session parameters.
func SessionConfig(cfg config.FloodConfig) core.SessionConfig {
	return core.SessionConfig{
		BoardSize:   cfg.Board.Size,
		NumColors:   cfg.Board.Colors,
		Sizes:       cfg.Cycles.Sizes,
		ColorCounts: cfg.Cycles.Colors,
	}
}

// replace installs a session and recomputes everything that depends on its size.
func (g *Game) replace(s *core.Session) {
	g.session = s
	g.relayout()
	g.cursorRow = platformcore.Clamp(g.cursorRow, 0, s.BoardSize()-1)
	g.cursorCol = platformcore.Clamp(g.cursorCol, 0, s.BoardSize()-1)
}

func (g *Game) relayout() {
	g.layout = NewLayout(g.screenW, g.session.BoardSize(), g.cfg.Display.CellWidth)
	g.tooSmall = !g.layout.Fits(g.screenW, g.screenH)
}

// Resize adapts the layout to new screen dimensions without touching the session.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.session != nil {
		g.relayout()
	}
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Regeneration works even when the board does not fit, so a player can
	// step down to a smaller size.
	switch {
	case in.Has(platformcore.ActionRestart):
		g.OnRestartRequested()
	case in.Has(platformcore.ActionResize):
		g.OnRequestBoardResize()
	case in.Has(platformcore.ActionCycleColors):
		g.OnRequestPaletteResize()
	}

	if p, ok := in.Click(); ok {
		g.handleClick(p)
	}
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(platformcore.ActionConfirm) {
		g.OnCellClick(g.cursorRow, g.cursorCol)
	}
	for _, a := range platformcore.PickActions {
		if !in.Has(a) {
			continue
		}
		n, _ := a.PickIndex()
		g.OnChooseColor(n)
	}

	return platformcore.StepResult{State: g.State()}
}

// handleClick dispatches a pointer click to a cell or a HUD button.
func (g *Game) handleClick(p platformcore.Point) {
	hit := g.layout.HitTest(p.X, p.Y)
	switch hit.Kind {
	case HitCell:
		if g.tooSmall {
			return
		}
		g.cursorRow, g.cursorCol = hit.Row, hit.Col
		g.OnCellClick(hit.Row, hit.Col)
	case HitSizeButton:
		g.OnRequestBoardResize()
	case HitColorsButton:
		g.OnRequestPaletteResize()
	}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	last := g.session.BoardSize() - 1
	if in.Has(platformcore.ActionUp) {
		g.cursorRow--
	}
	if in.Has(platformcore.ActionDown) {
		g.cursorRow++
	}
	if in.Has(platformcore.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(platformcore.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = platformcore.Clamp(g.cursorRow, 0, last)
	g.cursorCol = platformcore.Clamp(g.cursorCol, 0, last)
}

// OnCellClick plays the cell at (row, col). Returns whether a move was made.
func (g *Game) OnCellClick(row, col int) bool {
	return g.session.Click(row, col)
}

// OnChooseColor plays the n-th (zero-based) palette color.
func (g *Game) OnChooseColor(n int) bool {
	palette := g.session.Palette()
	if n < 0 || n >= len(palette) {
		return false
	}
	return g.session.ChooseColor(palette[n])
}

// OnRequestBoardResize starts a new game with the next board size.
func (g *Game) OnRequestBoardResize() {
	g.replace(g.session.Resized())
}

// OnRequestPaletteResize starts a new game with the next color count.
func (g *Game) OnRequestPaletteResize() {
	g.replace(g.session.WithNextColorCount())
}

// OnRestartRequested starts a new game with the same size and color count.
func (g *Game) OnRestartRequested() {
	g.replace(g.session.Restarted())
}

// QueryRenderModel returns a read-only copy of the session for presentation.
func (g *Game) QueryRenderModel() core.RenderModel {
	return g.session.RenderModel()
}

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	status := g.session.Status()
	return platformcore.GameState{
		Score:        g.session.Score(),
		GameOver:     status != core.StatusInProgress,
		Won:          status == core.StatusWon,
		Paused:       g.paused || g.tooSmall,
		MovesUsed:    g.session.MovesUsed(),
		MovesAllowed: g.session.MovesAllowed(),
		BoardSize:    g.session.BoardSize(),
		NumColors:    g.session.NumColors(),
	}
}
