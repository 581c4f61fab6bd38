package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up
	ActionDown           // S, Down arrow - move paddle down
	ActionLaunch         // Space - release the docked ball
	ActionPause          // P - pause/unpause
	ActionRestart        // Enter - start a new round after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Held actions are those whose key is down during the frame (movement).
// Pressed actions went down this frame (edges for pause, launch, restart).
// A terminal only reports key presses, so terminal presenters use Set,
// which marks an action both held and pressed for that frame.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as both held and newly pressed for this frame.
func (f *InputFrame) Set(a Action) {
	f.SetHeld(a)
	f.SetPressed(a)
}

// SetHeld marks an action's key as down for this frame.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetPressed marks an action's key as having gone down this frame.
func (f *InputFrame) SetPressed(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// IsHeld returns true if the action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// IsPressed returns true if the action's key went down this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
