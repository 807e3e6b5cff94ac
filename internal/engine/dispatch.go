package engine

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/termidle/internal/core"
)

// DefaultQuitKeys are bound to the quit command when nothing else is configured.
var DefaultQuitKeys = []string{"q", "ctrl+c"}

// KeyMap defines the bindings the dispatcher recognizes.
type KeyMap struct {
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// NewKeyMap binds the given keys to quit. An empty list falls back to DefaultQuitKeys.
func NewKeyMap(quitKeys []string) KeyMap {
	if len(quitKeys) == 0 {
		quitKeys = DefaultQuitKeys
	}
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(quitKeys[0], "quit"),
		),
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(nil)
}

// Dispatcher translates key events into loop commands.
// It never blocks: the loop only calls it after a poll reported an event.
type Dispatcher struct {
	keys KeyMap
}

// NewDispatcher creates a dispatcher with the given bindings.
func NewDispatcher(keys KeyMap) *Dispatcher {
	return &Dispatcher{keys: keys}
}

// KeyMap returns the dispatcher's bindings, e.g. for a help footer.
func (d *Dispatcher) KeyMap() KeyMap {
	return d.keys
}

// Dispatch maps one key event to an action. Only presses are actionable;
// repeats, releases and unbound keys yield ActionNone.
func (d *Dispatcher) Dispatch(ev core.KeyEvent) core.Action {
	if ev.Kind != core.KeyPress {
		return core.ActionNone
	}
	if key.Matches(ev, d.keys.Quit) {
		return core.ActionQuit
	}
	return core.ActionNone
}
