package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow - move cursor up
	ActionDown               // S, J, Down arrow - move cursor down
	ActionLeft               // A, H, Left arrow - move cursor left
	ActionRight              // D, L, Right arrow - move cursor right
	ActionConfirm            // Enter, Space - click the cell under the cursor
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R - new board with the same size and colors
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause
	ActionResize             // N - next board size
	ActionCycleColors        // C - next color count
	ActionPick1              // 1..6 - choose a palette color directly
	ActionPick2
	ActionPick3
	ActionPick4
	ActionPick5
	ActionPick6
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionResize:
		return "Resize"
	case ActionCycleColors:
		return "CycleColors"
	}
	if n, ok := a.PickIndex(); ok {
		return "Pick" + string(rune('1'+n))
	}
	return "Unknown"
}

// PickIndex returns the zero-based palette index for a pick action.
func (a Action) PickIndex() (int, bool) {
	if a >= ActionPick1 && a <= ActionPick6 {
		return int(a - ActionPick1), true
	}
	return 0, false
}

// PickActions lists the palette pick actions in order.
var PickActions = [...]Action{ActionPick1, ActionPick2, ActionPick3, ActionPick4, ActionPick5, ActionPick6}

// Point is a screen position in characters.
type Point struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one tick.
// It contains all actions that were triggered during this frame plus the last
// pointer click, if any.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	click    Point
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer click at screen position (x, y).
// A later click in the same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the pointer click recorded this frame.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.hasClick
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.click = Point{}
	f.hasClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
