package core

// Action represents a semantic loop command, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionQuit        // Q, Ctrl+C - stop the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyKind distinguishes presses from auto-repeat and release events.
// Terminals that cannot report repeats or releases only ever produce KeyPress.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// String returns a human-readable name for the key kind.
func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	default:
		return "unknown"
	}
}

// KeyEvent is one discrete key event read from the terminal.
// Key uses Bubble Tea naming ("q", "ctrl+c", "enter", "up").
type KeyEvent struct {
	Key  string
	Kind KeyKind
}

// NewKeyPress creates a press event for the given key name.
func NewKeyPress(key string) KeyEvent {
	return KeyEvent{Key: key, Kind: KeyPress}
}

// String returns the key name so events can be matched against key bindings.
func (e KeyEvent) String() string {
	return e.Key
}
