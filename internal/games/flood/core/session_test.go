package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/floodit/internal/games/flood/core"
)

func newSeededSession(t *testing.T, size, colors int, seed int64) *core.Session {
	t.Helper()
	s, err := core.NewSession(core.SessionConfig{BoardSize: size, NumColors: colors}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func fixtureSession(t *testing.T, numColors int, rows ...string) *core.Session {
	t.Helper()
	return core.NewSessionFromBoard(mustParse(t, rows...), numColors)
}

func TestMoveBudget(t *testing.T) {
	tests := []struct {
		size, colors, want int
	}{
		{3, 2, 6},
		{24, 6, 45},
		{8, 2, 11},
		{12, 4, 22},
		{1, 1, 2},
	}

	for _, tc := range tests {
		if got := core.MoveBudget(tc.size, tc.colors); got != tc.want {
			t.Errorf("MoveBudget(%d, %d) = %d, expected %d", tc.size, tc.colors, got, tc.want)
		}
	}
}

func TestNewSessionSeededScenario(t *testing.T) {
	s := newSeededSession(t, 3, 2, 1234)

	if s.MovesAllowed() != 6 {
		t.Errorf("MovesAllowed() = %d, expected 6", s.MovesAllowed())
	}
	if s.MovesUsed() != 0 {
		t.Errorf("MovesUsed() = %d, expected 0", s.MovesUsed())
	}
	if len(s.Palette()) != 2 {
		t.Errorf("expected 2 palette colors, got %d", len(s.Palette()))
	}

	m := s.RenderModel()
	for row := range m.Flooded {
		for col, flooded := range m.Flooded[row] {
			if flooded != (row == 0 && col == 0) {
				t.Errorf("cell (%d,%d) flooded = %v", row, col, flooded)
			}
		}
	}
	if s.Status() != core.StatusInProgress {
		t.Errorf("Status() = %v, expected in_progress", s.Status())
	}
}

func TestNewSessionDeterministic(t *testing.T) {
	a := newSeededSession(t, 12, 4, 42)
	b := newSeededSession(t, 12, 4, 42)

	if !a.Board().Equal(b.Board()) {
		t.Error("same seed should generate the same board")
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  core.SessionConfig
	}{
		{"zero size", core.SessionConfig{BoardSize: 0, NumColors: 3}},
		{"zero colors", core.SessionConfig{BoardSize: 8, NumColors: 0}},
		{"too many colors", core.SessionConfig{BoardSize: 8, NumColors: 7}},
		{"bad size cycle", core.SessionConfig{BoardSize: 8, NumColors: 3, Sizes: []int{8, 0}}},
		{"bad color cycle", core.SessionConfig{BoardSize: 8, NumColors: 3, ColorCounts: []int{3, 9}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewSession(tc.cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestClickCurrentColorIsIgnored(t *testing.T) {
	s := fixtureSession(t, 2,
		"RRG",
		"GGG",
		"GGG",
	)

	if s.Click(0, 1) {
		t.Error("clicking a cell of the flood color should be rejected")
	}
	if s.MovesUsed() != 0 {
		t.Errorf("MovesUsed() = %d, expected 0", s.MovesUsed())
	}
	if s.ChooseColor(core.ColorRed) {
		t.Error("choosing the flood color should be rejected")
	}
	if s.Board().FloodedCount() != 1 {
		t.Errorf("flooded set changed: %d cells", s.Board().FloodedCount())
	}
}

func TestClickIgnoredCases(t *testing.T) {
	s := fixtureSession(t, 2,
		"RGB",
		"GBR",
		"BRG",
	)

	if s.Click(0, 0) {
		t.Error("clicking a flooded cell should be rejected")
	}
	if s.Click(-1, 0) || s.Click(3, 3) {
		t.Error("clicking off the board should be rejected")
	}
	if s.MovesUsed() != 0 {
		t.Errorf("MovesUsed() = %d, expected 0", s.MovesUsed())
	}
}

func TestClickAppliesMove(t *testing.T) {
	s := fixtureSession(t, 2,
		"RGR",
		"GRG",
		"RGR",
	)

	if !s.Click(0, 1) {
		t.Fatal("click on green should be accepted")
	}
	if s.MovesUsed() != 1 {
		t.Errorf("MovesUsed() = %d, expected 1", s.MovesUsed())
	}
	if s.CurrentColor() != core.ColorGreen || s.TargetColor() != core.ColorGreen {
		t.Errorf("current/target = %v/%v, expected green", s.CurrentColor(), s.TargetColor())
	}
	if got := s.Board().String(); got != "GGr\nGrg\nrgr" {
		t.Errorf("board after click:\n%s", got)
	}
}

// The checkerboard takes exactly four moves; with one color its budget is
// 1 + 3 = 4, so the last move wins on the budget boundary.
func TestWinAtBudget(t *testing.T) {
	s := fixtureSession(t, 1,
		"RGR",
		"GRG",
		"RGR",
	)
	if s.MovesAllowed() != 4 {
		t.Fatalf("MovesAllowed() = %d, expected 4", s.MovesAllowed())
	}

	moves := [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}}
	for i, m := range moves {
		if !s.Click(m[0], m[1]) {
			t.Fatalf("move %d at %v rejected\n%s", i+1, m, s.Board())
		}
	}

	if s.Status() != core.StatusWon {
		t.Errorf("Status() = %v, expected won\n%s", s.Status(), s.Board())
	}
	if s.Score() != 1*3*1 {
		t.Errorf("Score() = %d, expected 3", s.Score())
	}
	if s.Click(0, 1) {
		t.Error("no move should be accepted after winning")
	}
}

func TestLoseWhenBudgetSpent(t *testing.T) {
	s := fixtureSession(t, 1,
		"RGB",
		"GBR",
		"BRG",
	)

	moves := [][2]int{{0, 2}, {0, 1}, {1, 2}, {2, 2}}
	for i, m := range moves {
		if !s.Click(m[0], m[1]) {
			t.Fatalf("move %d at %v rejected\n%s", i+1, m, s.Board())
		}
		if i < len(moves)-1 && s.Status() != core.StatusInProgress {
			t.Fatalf("status after move %d = %v, expected in_progress", i+1, s.Status())
		}
	}

	if s.Status() != core.StatusLost {
		t.Errorf("Status() = %v, expected lost", s.Status())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.MovesLeft() != 0 {
		t.Errorf("MovesLeft() = %d, expected 0", s.MovesLeft())
	}

	before := s.Board()
	if s.Click(1, 1) {
		t.Error("no move should be accepted after the budget is spent")
	}
	if s.MovesUsed() != 4 || !s.Board().Equal(before) {
		t.Error("rejected move changed the session")
	}
}

// One layer per pass can leave a cell of the flood color outside the
// flooded set; the board still counts as complete.
func TestWinWithSameColoredCellOutsideRegion(t *testing.T) {
	s := fixtureSession(t, 2,
		"RG",
		"GG",
	)

	if !s.Click(0, 1) {
		t.Fatal("click on green should be accepted")
	}
	if got := s.Board().String(); got != "GG\nGg" {
		t.Fatalf("board after click:\n%s", got)
	}
	if !s.Board().IsFullyFlooded() {
		t.Error("single-colored board should be fully flooded")
	}
	if s.Status() != core.StatusWon {
		t.Errorf("Status() = %v, expected won", s.Status())
	}
	if s.Score() != (5-1+1)*2*2 {
		t.Errorf("Score() = %d, expected 20", s.Score())
	}
}

func TestSingleColorSessionStartsWon(t *testing.T) {
	s := newSeededSession(t, 3, 1, 7)

	if s.Status() != core.StatusWon {
		t.Fatalf("Status() = %v, expected won\n%s", s.Status(), s.Board())
	}
	if s.MovesUsed() != 0 || s.Score() != (4+1)*3*1 {
		t.Errorf("moves %d, score %d; expected 0 and 15", s.MovesUsed(), s.Score())
	}
	if s.Click(2, 2) {
		t.Error("no move should be accepted on a won board")
	}
}

func TestChooseColorPicksFirstUnflooded(t *testing.T) {
	s := fixtureSession(t, 3,
		"RGB",
		"BRR",
		"GGG",
	)

	if !s.ChooseColor(core.ColorBlue) {
		t.Fatal("ChooseColor(blue) should be accepted")
	}
	if s.CurrentColor() != core.ColorBlue {
		t.Errorf("CurrentColor() = %v, expected blue", s.CurrentColor())
	}
	if s.ChooseColor(core.ColorPurple) {
		t.Error("choosing a color absent from the board should be rejected")
	}
	if s.MovesUsed() != 1 {
		t.Errorf("MovesUsed() = %d, expected 1", s.MovesUsed())
	}
}

func TestResizeCycleRoundTrip(t *testing.T) {
	s := newSeededSession(t, 15, 4, 5)
	want := []int{12, 8, 24, 20, 15}

	for i, size := range want {
		s = s.Resized()
		if s.BoardSize() != size {
			t.Errorf("resize %d: BoardSize() = %d, expected %d", i+1, s.BoardSize(), size)
		}
		if s.NumColors() != 4 {
			t.Errorf("resize %d: NumColors() = %d, expected 4", i+1, s.NumColors())
		}
		if s.MovesAllowed() != core.MoveBudget(size, 4) {
			t.Errorf("resize %d: MovesAllowed() = %d", i+1, s.MovesAllowed())
		}
	}
}

func TestColorCycleRoundTrip(t *testing.T) {
	s := newSeededSession(t, 8, 6, 5)
	want := []int{5, 4, 3, 2, 6}

	for i, n := range want {
		s = s.WithNextColorCount()
		if s.NumColors() != n || len(s.Palette()) != n {
			t.Errorf("cycle %d: NumColors() = %d, palette %d, expected %d", i+1, s.NumColors(), len(s.Palette()), n)
		}
		if s.BoardSize() != 8 {
			t.Errorf("cycle %d: BoardSize() = %d, expected 8", i+1, s.BoardSize())
		}
		if s.MovesAllowed() != core.MoveBudget(8, n) {
			t.Errorf("cycle %d: MovesAllowed() = %d", i+1, s.MovesAllowed())
		}
	}
}

func TestCycleFromUnknownValueStartsOver(t *testing.T) {
	s := newSeededSession(t, 10, 1, 5)

	if got := s.Resized().BoardSize(); got != 24 {
		t.Errorf("resize from 10: got %d, expected 24", got)
	}
	if got := s.WithNextColorCount().NumColors(); got != 6 {
		t.Errorf("color cycle from 1: got %d, expected 6", got)
	}
}

func TestRegenerationResetsAndLeavesOriginal(t *testing.T) {
	s := fixtureSession(t, 2,
		"RGR",
		"GRG",
		"RGR",
	)
	s.Click(0, 1)

	restarted := s.Restarted()
	if restarted.MovesUsed() != 0 {
		t.Errorf("restarted MovesUsed() = %d, expected 0", restarted.MovesUsed())
	}
	if restarted.BoardSize() != 3 || restarted.NumColors() != 2 {
		t.Errorf("restarted config = %dx%d/%d", restarted.BoardSize(), restarted.BoardSize(), restarted.NumColors())
	}
	if restarted.Board().FloodedCount() != 1 {
		t.Errorf("restarted board should have only the origin flooded")
	}
	if s.MovesUsed() != 1 {
		t.Errorf("original session changed: MovesUsed() = %d", s.MovesUsed())
	}
}

func TestCustomCycles(t *testing.T) {
	cfg := core.SessionConfig{
		BoardSize:   5,
		NumColors:   2,
		Sizes:       []int{5, 7},
		ColorCounts: []int{2, 3},
	}
	s, err := core.NewSession(cfg, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	if got := s.Resized().Resized().BoardSize(); got != 5 {
		t.Errorf("two resizes: got %d, expected 5", got)
	}
	if got := s.WithNextColorCount().NumColors(); got != 3 {
		t.Errorf("color cycle: got %d, expected 3", got)
	}
}

// TestInvariantsUnderRandomPlay drives seeded sessions with random clicks and
// checks the flooded-region invariants after every step.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		size := 3 + int(seed%6)
		colors := 2 + int(seed%5)
		s := newSeededSession(t, size, colors, seed)
		clicks := rand.New(rand.NewSource(seed * 31))

		prevFlooded := s.Board().FloodedMask()
		for step := 0; step < 200 && s.Status() == core.StatusInProgress; step++ {
			usedBefore := s.MovesUsed()
			accepted := s.Click(clicks.Intn(size), clicks.Intn(size))

			if accepted != (s.MovesUsed() == usedBefore+1) {
				t.Fatalf("seed %d: accepted=%v but moves %d -> %d", seed, accepted, usedBefore, s.MovesUsed())
			}

			b := s.Board()
			origin, _ := b.CellAt(0, 0)
			if !origin.Flooded {
				t.Fatalf("seed %d: origin unflooded", seed)
			}
			if origin.Color != s.CurrentColor() {
				t.Fatalf("seed %d: origin color %v != current %v", seed, origin.Color, s.CurrentColor())
			}

			mask := b.FloodedMask()
			for row := range mask {
				for col := range mask[row] {
					if prevFlooded[row][col] && !mask[row][col] {
						t.Fatalf("seed %d: cell (%d,%d) unflooded", seed, row, col)
					}
					if mask[row][col] {
						cell, _ := b.CellAt(row, col)
						if cell.Color != s.CurrentColor() {
							t.Fatalf("seed %d: flooded cell (%d,%d) is %v, current %v", seed, row, col, cell.Color, s.CurrentColor())
						}
					}
				}
			}
			if !connectedFromOrigin(mask) {
				t.Fatalf("seed %d: flooded region not connected\n%s", seed, b)
			}
			if allColor(b, s.CurrentColor()) && s.Status() != core.StatusWon {
				t.Fatalf("seed %d: single-colored board has status %v\n%s", seed, s.Status(), b)
			}
			prevFlooded = mask
		}

		if s.Status() == core.StatusWon {
			for _, row := range s.Board().Colors() {
				for _, c := range row {
					if c != s.CurrentColor() {
						t.Fatalf("seed %d: won board has color %v", seed, c)
					}
				}
			}
		}
		if s.MovesUsed() > s.MovesAllowed() {
			t.Fatalf("seed %d: moves %d exceed budget %d", seed, s.MovesUsed(), s.MovesAllowed())
		}
	}
}

func allColor(b *core.Board, c core.Color) bool {
	for _, row := range b.Colors() {
		for _, cell := range row {
			if cell != c {
				return false
			}
		}
	}
	return true
}

// connectedFromOrigin reports whether every flooded cell is reachable from
// (0,0) through flooded cells.
func connectedFromOrigin(mask [][]bool) bool {
	size := len(mask)
	seen := make([][]bool, size)
	for i := range seen {
		seen[i] = make([]bool, size)
	}

	stack := [][2]int{{0, 0}}
	seen[0][0] = true
	reached := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for _, d := range core.AllDirs {
			dr, dc := d.Delta()
			r, c := p[0]+dr, p[1]+dc
			if r < 0 || r >= size || c < 0 || c >= size || seen[r][c] || !mask[r][c] {
				continue
			}
			seen[r][c] = true
			stack = append(stack, [2]int{r, c})
		}
	}

	total := 0
	for _, row := range mask {
		for _, f := range row {
			if f {
				total++
			}
		}
	}
	return reached == total
}
