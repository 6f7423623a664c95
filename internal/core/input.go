package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - move up (free-movement modes)
	ActionDown           // S, Down arrow - move down (free-movement modes)
	ActionTap            // Space - tap (fire burst / confirm in shop)
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back / toggle shop
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionTap:
		return "Tap"
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
	default:
		return "Unknown"
	}
}

// SwipeDir is the direction of a one-shot swipe gesture.
type SwipeDir int

const (
	SwipeNone SwipeDir = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// InputFrame represents the input state for a single simulation tick:
// held movement actions, discrete one-shot events (tap, swipe), and an
// optional absolute movement target. One-shot events are valid for exactly
// one frame; the platform clears the frame after each Step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Swipe is a one-shot gesture direction, SwipeNone if absent.
	Swipe SwipeDir

	// TargetX is an absolute horizontal movement intent in cells.
	// Only meaningful when HasTarget is true; "no intent this frame"
	// is represented by HasTarget == false, never by a zero value.
	TargetX   int
	HasTarget bool
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

// SetSwipe records a one-shot swipe gesture for this frame.
func (f *InputFrame) SetSwipe(dir SwipeDir) {
	f.Swipe = dir
}

// SetTarget records an absolute movement target for this frame.
func (f *InputFrame) SetTarget(x int) {
	f.TargetX = x
	f.HasTarget = true
}

// Target returns the movement target and whether one was set this frame.
func (f InputFrame) Target() (int, bool) {
	return f.TargetX, f.HasTarget
}

// Clear resets all actions and one-shot events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Swipe = SwipeNone
	f.TargetX = 0
	f.HasTarget = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Swipe = f.Swipe
	clone.TargetX = f.TargetX
	clone.HasTarget = f.HasTarget
	return clone
}
