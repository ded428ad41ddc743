package flood

import (
	"strings"
	"testing"

	"github.com/vovakirdan/floodit/internal/config"
	platformcore "github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/flood/core"
	"github.com/vovakirdan/floodit/internal/registry"
)

// newTestGame starts a game with a fixed board and no config files in reach.
func newTestGame(t *testing.T, size, colors int, seed int64, w, h int) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetConfigPath("")
	SetDifficultyPreset("")
	SetOverrides(size, colors)
	t.Cleanup(func() { SetOverrides(0, 0) })

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 30, Seed: seed})
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func clickFrame(x, y int) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	f.SetClick(x, y)
	return f
}

func mustBoard(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b, err := core.ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	return b
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Flood-It" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetAppliesOverrides(t *testing.T) {
	g := newTestGame(t, 8, 3, 1, 80, 24)
	st := g.State()

	if st.BoardSize != 8 || st.NumColors != 3 {
		t.Errorf("board = %dx%d/%d, expected 8x8/3", st.BoardSize, st.BoardSize, st.NumColors)
	}
	if st.MovesAllowed != 14 || st.MovesUsed != 0 {
		t.Errorf("moves = %d/%d, expected 0/14", st.MovesUsed, st.MovesAllowed)
	}
	if st.GameOver || st.Paused {
		t.Errorf("fresh game should be running: %+v", st)
	}
}

func TestResetAppliesPreset(t *testing.T) {
	g := newTestGame(t, 0, 0, 1, 120, 40)
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g.Reset(platformcore.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 1})
	if st := g.State(); st.BoardSize != 20 || st.NumColors != 5 {
		t.Errorf("hard preset board = %d/%d, expected 20/5", st.BoardSize, st.NumColors)
	}
}

func TestInstancePresetWinsOverPackagePreset(t *testing.T) {
	g := newTestGame(t, 0, 0, 1, 120, 40)
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g.SetPreset(config.DifficultyEasy)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 1})
	if st := g.State(); st.BoardSize != 8 || st.NumColors != 3 {
		t.Errorf("instance preset board = %d/%d, expected 8/3", st.BoardSize, st.NumColors)
	}

	other := New()
	other.Reset(platformcore.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 1})
	if st := other.State(); st.BoardSize != 20 {
		t.Errorf("other instance should keep the package preset, got %d", st.BoardSize)
	}
}

func TestClearOptions(t *testing.T) {
	g := newTestGame(t, 8, 3, 1, 120, 40)
	SetDifficultyPreset("hard")
	SetConfigPath("missing.yaml")
	t.Cleanup(func() {
		SetDifficultyPreset("")
		SetConfigPath("")
	})

	ClearOptions()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 1})

	def := config.DefaultFloodConfig()
	if st := g.State(); st.BoardSize != def.Board.Size || st.NumColors != def.Board.Colors {
		t.Errorf("board = %d/%d, expected defaults %d/%d", st.BoardSize, st.NumColors, def.Board.Size, def.Board.Colors)
	}
}

func TestDefaultConfigStartsSession(t *testing.T) {
	cfg := config.DefaultFloodConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if _, err := core.NewSession(SessionConfig(cfg), zeroSource{}); err != nil {
		t.Fatalf("default config rejected by the session: %v", err)
	}
}

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestSingleColorGameIsWon(t *testing.T) {
	g := newTestGame(t, 8, 1, 3, 80, 24)

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Fatalf("state = %+v, expected a won game", st)
	}
	if g.OnCellClick(7, 7) {
		t.Error("click on a won board should be rejected")
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	a := newTestGame(t, 12, 4, 42, 80, 24)
	b := newTestGame(t, 12, 4, 42, 80, 24)

	inputs := []platformcore.InputFrame{
		frame(platformcore.ActionPick2),
		frame(platformcore.ActionRight, platformcore.ActionDown),
		frame(platformcore.ActionPick3),
		frame(platformcore.ActionRestart),
		frame(platformcore.ActionPick1),
		frame(platformcore.ActionResize),
	}
	for i, in := range inputs {
		a.Step(in.Clone())
		b.Step(in.Clone())
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("step %d: snapshots diverged\n%+v\n%+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestStepRegeneration(t *testing.T) {
	g := newTestGame(t, 8, 3, 7, 120, 40)

	g.Step(frame(platformcore.ActionResize))
	if st := g.State(); st.BoardSize != 24 || st.NumColors != 3 {
		t.Errorf("resize from 8: got %d/%d, expected 24/3", st.BoardSize, st.NumColors)
	}

	g.Step(frame(platformcore.ActionCycleColors))
	if st := g.State(); st.NumColors != 2 || st.BoardSize != 24 {
		t.Errorf("color cycle from 3: got %d/%d, expected 24/2", st.BoardSize, st.NumColors)
	}
	if st := g.State(); st.MovesAllowed != core.MoveBudget(24, 2) {
		t.Errorf("MovesAllowed = %d after color cycle", st.MovesAllowed)
	}

	g.Step(frame(platformcore.ActionPick1, platformcore.ActionPick2))
	g.Step(frame(platformcore.ActionRestart))
	if st := g.State(); st.MovesUsed != 0 || st.BoardSize != 24 || st.NumColors != 2 {
		t.Errorf("restart: %+v", st)
	}
}

func TestMouseClickOnCell(t *testing.T) {
	g := newTestGame(t, 8, 4, 3, 80, 24)
	m := g.QueryRenderModel()

	// Find an unflooded cell that differs from the flood color.
	row, col := -1, -1
	for r := 0; r < m.BoardSize && row < 0; r++ {
		for c := 0; c < m.BoardSize; c++ {
			if !m.Flooded[r][c] && m.CellColors[r][c] != m.CurrentColor {
				row, col = r, c
				break
			}
		}
	}
	if row < 0 {
		t.Skip("generated board has a single color")
	}

	x, y := g.Layout().CellOrigin(row, col)
	g.Step(clickFrame(x+1, y))

	if st := g.State(); st.MovesUsed != 1 {
		t.Errorf("click on (%d,%d) should play a move, moves = %d", row, col, st.MovesUsed)
	}
	if r, c := g.Cursor(); r != row || c != col {
		t.Errorf("cursor = (%d,%d), expected (%d,%d)", r, c, row, col)
	}
	if got := g.QueryRenderModel().CurrentColor; got != m.CellColors[row][col] {
		t.Errorf("flood color = %v, expected %v", got, m.CellColors[row][col])
	}
}

func TestMouseClickButtons(t *testing.T) {
	g := newTestGame(t, 12, 4, 3, 80, 24)
	l := g.Layout()

	g.Step(clickFrame(l.SizeButton.X, l.SizeButton.Y))
	if st := g.State(); st.BoardSize != 8 {
		t.Errorf("size button from 12: got %d, expected 8", st.BoardSize)
	}

	l = g.Layout()
	g.Step(clickFrame(l.ColorsButton.X+3, l.ColorsButton.Y))
	if st := g.State(); st.NumColors != 3 {
		t.Errorf("colors button from 4: got %d, expected 3", st.NumColors)
	}

	g.Step(clickFrame(0, 0))
	if st := g.State(); st.MovesUsed != 0 || st.BoardSize != 8 {
		t.Errorf("click on nothing changed the game: %+v", st)
	}
}

func TestCursorAndConfirm(t *testing.T) {
	g := newTestGame(t, 8, 4, 11, 80, 24)

	g.Step(frame(platformcore.ActionUp, platformcore.ActionLeft))
	if r, c := g.Cursor(); r != 0 || c != 0 {
		t.Errorf("cursor should clamp at the origin, got (%d,%d)", r, c)
	}

	g.Step(frame(platformcore.ActionConfirm))
	if g.State().MovesUsed != 0 {
		t.Error("confirming the flooded origin should not play a move")
	}

	g.Step(frame(platformcore.ActionRight))
	cell, _ := g.session.CellAt(0, 1)
	expectMove := !cell.Flooded && cell.Color != g.session.CurrentColor()

	g.Step(frame(platformcore.ActionConfirm))
	if got := g.State().MovesUsed == 1; got != expectMove {
		t.Errorf("confirm on (0,1) moved = %v, expected %v", got, expectMove)
	}

	for i := 0; i < 20; i++ {
		g.Step(frame(platformcore.ActionDown, platformcore.ActionRight))
	}
	if r, c := g.Cursor(); r != 7 || c != 7 {
		t.Errorf("cursor should clamp at (7,7), got (%d,%d)", r, c)
	}
}

func TestPickActions(t *testing.T) {
	g := newTestGame(t, 8, 4, 5, 80, 24)
	palette := g.session.Palette()
	board := g.session.Board()

	pick := -1
	for i, c := range palette {
		if c == g.session.CurrentColor() {
			continue
		}
		for _, row := range board.Colors() {
			for _, cc := range row {
				if cc == c {
					pick = i
				}
			}
		}
		if pick >= 0 {
			break
		}
	}
	if pick < 0 {
		t.Skip("no playable color on the generated board")
	}

	g.Step(frame(platformcore.PickActions[pick]))
	if g.State().MovesUsed != 1 {
		t.Errorf("pick %d should play a move", pick+1)
	}
	if g.session.CurrentColor() != palette[pick] {
		t.Errorf("flood color = %v, expected %v", g.session.CurrentColor(), palette[pick])
	}

	if g.OnChooseColor(len(palette)) || g.OnChooseColor(-1) {
		t.Error("picks outside the palette should be ignored")
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, 8, 4, 5, 80, 24)

	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	g.Step(frame(platformcore.ActionResize, platformcore.ActionPick1, platformcore.ActionPick2))
	after := g.Snapshot()
	if after.BoardSize != before.BoardSize || after.Board != before.Board || after.MovesUsed != before.MovesUsed {
		t.Error("input should be ignored while paused")
	}
	if after.State != StatePaused {
		t.Errorf("snapshot state = %s", after.State)
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallAllowsOnlyRegeneration(t *testing.T) {
	// 8x8 needs 12 lines.
	g := newTestGame(t, 8, 4, 5, 80, 10)

	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Fatal("game should report a too small window")
	}

	x, y := g.Layout().CellOrigin(0, 1)
	g.Step(clickFrame(x, y))
	g.Step(frame(platformcore.ActionPick1, platformcore.ActionPick2, platformcore.ActionConfirm))
	if g.State().MovesUsed != 0 {
		t.Error("moves should be blocked while the board does not fit")
	}

	g.Step(frame(platformcore.ActionResize))
	if g.State().BoardSize != 24 {
		t.Errorf("resize should still work, size = %d", g.State().BoardSize)
	}

	g.Resize(120, 40)
	if g.State().Paused {
		t.Error("game should resume once the window is large enough")
	}
	if g.State().BoardSize != 24 {
		t.Error("window resize should keep the session")
	}
}

func TestFixtureWinAndLoss(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		clicks [][2]int
		won    bool
		msg    string
	}{
		{
			name:   "win on the last move",
			rows:   []string{"RGR", "GRG", "RGR"},
			clicks: [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			won:    true,
			msg:    "You win!",
		},
		{
			name:   "out of clicks",
			rows:   []string{"RGB", "GBR", "BRG"},
			clicks: [][2]int{{0, 2}, {0, 1}, {1, 2}, {2, 2}},
			won:    false,
			msg:    "ran out of clicks",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 3, 2, 1, 80, 24)
			g.replace(core.NewSessionFromBoard(mustBoard(t, tc.rows...), 1))

			for _, c := range tc.clicks {
				if !g.OnCellClick(c[0], c[1]) {
					t.Fatalf("click %v rejected", c)
				}
			}

			st := g.State()
			if !st.GameOver || st.Won != tc.won {
				t.Fatalf("state = %+v, expected game over with won=%v", st, tc.won)
			}
			if tc.won && st.Score != 3 {
				t.Errorf("Score = %d, expected 3", st.Score)
			}

			screen := platformcore.NewScreen(80, 24)
			g.Render(screen)
			if row := screen.Row(g.Layout().MessageY); !strings.Contains(row, tc.msg) {
				t.Errorf("message row = %q, expected %q", row, tc.msg)
			}
		})
	}
}

func TestRenderHUDAndBoard(t *testing.T) {
	g := newTestGame(t, 8, 3, 9, 80, 24)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	for _, want := range []string{"FLOOD-IT", "8x8", "3 colors", "Moves 0/14"} {
		if !strings.Contains(top, want) {
			t.Errorf("HUD line %q missing %q", top, want)
		}
	}
	if buttons := screen.Row(1); !strings.Contains(buttons, sizeButtonLabel) || !strings.Contains(buttons, colorsButtonLabel) {
		t.Errorf("button line = %q", buttons)
	}
	if msg := screen.Row(g.Layout().MessageY); !strings.Contains(msg, "press 1-3") {
		t.Errorf("message line = %q", msg)
	}

	m := g.QueryRenderModel()
	l := g.Layout()
	for row := 0; row < m.BoardSize; row++ {
		for col := 0; col < m.BoardSize; col++ {
			x, y := l.CellOrigin(row, col)
			want := ScreenColor(m.CellColors[row][col])
			if m.Flooded[row][col] {
				want = want.Bright()
			}
			if got := screen.GetCell(x, y).Color; got != want {
				t.Fatalf("cell (%d,%d) drawn in %d, expected %d", row, col, got, want)
			}
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 24, 6, 1, 80, 24)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}
	if !strings.Contains(screen.String(), "A 24x24 board needs 50x28") {
		t.Errorf("expected size hint, got\n%s", screen.String())
	}
}

func TestScreenColor(t *testing.T) {
	for _, c := range core.BasePalette() {
		sc := ScreenColor(c)
		if sc == platformcore.ColorDefault || sc.Bright() == sc {
			t.Errorf("%v maps to %d without a bright variant", c, sc)
		}
	}
	if ScreenColor(core.ColorCount) != platformcore.ColorDefault {
		t.Error("invalid color should map to default")
	}
}
