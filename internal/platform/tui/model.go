package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/registry"
	"github.com/vovakirdan/floodit/internal/storage"
)

// logger receives gameplay and storage events. Discarded unless SetLogger is called,
// since the alt screen owns the terminal while a game runs.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by the UI models.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	player      string
	allowBack   bool // Back returns to the menu instead of being ignored
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current decided game has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithPlayer sets the name stored with recorded results.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithBackToMenu makes Back end the game and return to the menu.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.player)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			logger.Warn("screenshot failed", "error", err)
		} else {
			logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && m.allowBack {
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can relayout keep their board; others start over.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick feeds the collected input to the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	if !m.gameState.GameOver {
		m.resultSaved = false
	} else if !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition reports moves, new boards and decided games.
func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case cur.BoardSize != prev.BoardSize || cur.NumColors != prev.NumColors || cur.MovesUsed < prev.MovesUsed:
		logger.Info("new board", "size", cur.BoardSize, "colors", cur.NumColors, "moves", cur.MovesAllowed)
	case cur.MovesUsed > prev.MovesUsed:
		logger.Debug("move", "used", cur.MovesUsed, "allowed", cur.MovesAllowed)
	}
	if cur.GameOver && !prev.GameOver {
		logger.Info("game decided", "won", cur.Won, "score", cur.Score, "moves", cur.MovesUsed)
	}
}

// saveResult records the decided game. Storage errors never interrupt play.
func (m Model) saveResult() {
	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		GameID:       m.game.ID(),
		Player:       m.player,
		Won:          m.gameState.Won,
		Score:        m.gameState.Score,
		MovesUsed:    m.gameState.MovesUsed,
		MovesAllowed: m.gameState.MovesAllowed,
		BoardSize:    m.gameState.BoardSize,
		NumColors:    m.gameState.NumColors,
		Seed:         m.config.Seed,
	})
	if err != nil {
		logger.Error("could not save result", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.floodit/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".floodit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cell clicks and HUD buttons
	)

	_, err := p.Run()
	return err
}
