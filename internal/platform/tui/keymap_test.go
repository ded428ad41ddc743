package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floodit/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"wasd left", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"n resizes", runeKey('n'), core.ActionResize, false},
		{"c cycles colors", runeKey('c'), core.ActionCycleColors, false},
		{"1 picks first color", runeKey('1'), core.ActionPick1, false},
		{"6 picks sixth color", runeKey('6'), core.ActionPick6, false},
		{"7 is unmapped", runeKey('7'), core.ActionNone, false},
		{"x is unmapped", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), got, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('3'), &frame) {
		t.Error("3 should not quit")
	}
	km.MapKeyToFrame(runeKey('x'), &frame)

	if !frame.Has(core.ActionPick3) {
		t.Error("frame should contain Pick3")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("expected 1 action, got %d", len(frame.Actions))
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected bool
	}{
		{"left press", tea.MouseMsg{X: 7, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, true},
		{"left release", tea.MouseMsg{X: 7, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, false},
		{"right press", tea.MouseMsg{X: 7, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, false},
		{"motion", tea.MouseMsg{X: 7, Y: 4, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := km.MapMouseToFrame(tt.msg, &frame); got != tt.expected {
				t.Fatalf("MapMouseToFrame() = %v, expected %v", got, tt.expected)
			}
			p, ok := frame.Click()
			if ok != tt.expected {
				t.Fatalf("click recorded = %v, expected %v", ok, tt.expected)
			}
			if ok && (p.X != 7 || p.Y != 4) {
				t.Errorf("click at %+v, expected (7,4)", p)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('b'), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
