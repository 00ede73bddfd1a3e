package core

// Action is a semantic input, abstracted from physical keys and buttons.
type Action uint8

const (
	ActionNone    Action = iota
	ActionConfirm        // Climb to the aimed tile
	ActionLeft           // Move the aim cursor left
	ActionRight          // Move the aim cursor right
	ActionRepeat         // Replay the path hint
	ActionPause          // Toggle pause
	ActionRestart        // Start a fresh attempt
	ActionNext           // Next level after a win
	ActionBack           // Leave the level for the picker
	ActionQuit           // Exit the program or SSH session

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionConfirm: "Confirm",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRepeat:  "Repeat",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionNext:    "Next",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// Tap is a pointer press in screen cell coordinates (y grows downward).
type Tap struct {
	X, Y int
}

// InputFrame collects everything that happened between two frames.
// The zero value is an empty frame.
type InputFrame struct {
	actions uint32 // One bit per Action

	// Taps are kept in arrival order; each one is resolved separately.
	Taps []Tap

	// Dt is the elapsed time in seconds this frame covers.
	Dt float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.actions |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.actions&(1<<a) != 0
}

// Empty reports whether the frame carries no actions and no taps.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && len(f.Taps) == 0
}

// AddTap records a tap at the given cell.
func (f *InputFrame) AddTap(x, y int) {
	f.Taps = append(f.Taps, Tap{X: x, Y: y})
}

// Clear resets the frame for reuse, keeping the tap buffer.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Taps = f.Taps[:0]
	f.Dt = 0
}
