package core

// Action represents a semantic control action, abstracted from physical key
// presses. Simulations work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionPause               // Space, P - toggle pause/resume
	ActionSpeedUp             // +, = - raise the speed multiplier
	ActionSpeedDown           // -, _ - lower the speed multiplier
	ActionScrubBack           // [ - step history cursor back (while paused)
	ActionScrubForward        // ] - step history cursor forward (while paused)
	ActionSave                // S - write the working state to disk
	ActionLoad                // L - replace the working state from disk
	ActionFocus               // F - reset the camera target (camera sims only)
	ActionPanLeft             // Left arrow - pan camera west
	ActionPanRight            // Right arrow - pan camera east
	ActionPanUp               // Up arrow - pan camera north
	ActionPanDown             // Down arrow - pan camera south
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionScrubBack:
		return "ScrubBack"
	case ActionScrubForward:
		return "ScrubForward"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionFocus:
		return "Focus"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer carries the mouse state for one simulation tick.
// Deltas and wheel ticks accumulate between ticks and are zeroed by Clear;
// position and the dragging flag persist across frames.
type Pointer struct {
	X, Y     int  // Current cell position
	DX, DY   int  // Drag delta since the last tick, nonzero only while dragging
	Dragging bool // Primary button held
	Wheel    int  // Wheel ticks since the last tick, positive is zoom in
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the accumulated mouse state for this frame.
	Pointer Pointer
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

// Clear resets actions and pointer accumulators for the next frame.
// Pointer position and drag state carry over.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.DX = 0
	f.Pointer.DY = 0
	f.Pointer.Wheel = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
