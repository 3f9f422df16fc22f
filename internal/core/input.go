package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H, left touch zone
	ActionRight        // Right arrow, D, L, right touch zone
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
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that are active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Key is a physical key the game listens to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPause
)

// Zone is an on-screen touch control.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLeft
	ZoneRight
)

// InputState tracks the directional intent held by the player.
// It is fed by key and touch events between frames and read once per frame.
type InputState struct {
	MoveLeft  bool
	MoveRight bool
}

// KeyDown records a key press. It returns true when the press is a pause
// toggle request; in that case no movement flag is touched. While paused,
// directional presses are ignored.
func (s *InputState) KeyDown(k Key, paused bool) (togglePause bool) {
	if k == KeyPause {
		return true
	}
	if paused {
		return false
	}
	switch k {
	case KeyLeft:
		s.MoveLeft = true
	case KeyRight:
		s.MoveRight = true
	}
	return false
}

// KeyUp records a key release. Releases are honored in every state.
func (s *InputState) KeyUp(k Key) {
	switch k {
	case KeyLeft:
		s.MoveLeft = false
	case KeyRight:
		s.MoveRight = false
	}
}

// Held reports whether the direction of k is currently held.
func (s InputState) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return s.MoveLeft
	case KeyRight:
		return s.MoveRight
	}
	return false
}

// TouchStart maps a touch zone press onto the same intent as the matching key.
func (s *InputState) TouchStart(z Zone) {
	switch z {
	case ZoneLeft:
		s.MoveLeft = true
	case ZoneRight:
		s.MoveRight = true
	}
}

// TouchEnd clears the intent of a released touch zone.
func (s *InputState) TouchEnd(z Zone) {
	switch z {
	case ZoneLeft:
		s.MoveLeft = false
	case ZoneRight:
		s.MoveRight = false
	}
}

// Release drops every held intent.
func (s *InputState) Release() {
	s.MoveLeft = false
	s.MoveRight = false
}

// Frame returns the held intents as an input frame for the next step.
func (s InputState) Frame() InputFrame {
	frame := NewInputFrame()
	if s.MoveLeft {
		frame.Set(ActionLeft)
	}
	if s.MoveRight {
		frame.Set(ActionRight)
	}
	return frame
}
