package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termidle/internal/engine"
	"github.com/vovakirdan/termidle/internal/games/termidle"
)

// Model is the Bubble Tea model for a session. It holds only the latest
// snapshot; all game logic runs in the engine loop.
type Model struct {
	bridge   *Bridge
	keys     engine.KeyMap
	help     help.Model
	snap     termidle.Snapshot
	hasFrame bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a model that forwards key presses to the bridge.
func NewModel(bridge *Bridge, keys engine.KeyMap, width, height int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		bridge: bridge,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model. The loop drives everything, so there is no
// initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.bridge.PushKey(KeyEventFromMsg(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = termidle.Snapshot(msg)
		m.hasFrame = true
		return m, nil

	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasFrame {
		return "Starting..."
	}
	return RenderGame(m.snap, m.width, m.height, m.help.View(m.keys))
}

// Snapshot returns the snapshot currently displayed.
func (m Model) Snapshot() termidle.Snapshot {
	return m.snap
}
