package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termidle/internal/core"
)

// KeyEventFromMsg converts a Bubble Tea key message into a core key event.
// Bubble Tea only reports presses, so every event is a KeyPress.
func KeyEventFromMsg(msg tea.KeyMsg) core.KeyEvent {
	return core.NewKeyPress(msg.String())
}
