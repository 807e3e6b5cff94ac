package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/termidle/internal/games/termidle"
)

// Layout constants
const (
	defaultWidth   = 80
	defaultHeight  = 24
	minPanelWidth  = 20
	minPanelCols   = 5 // Border, padding and one column of content
	playerPanelPct = 30 // Share of the width used by the player panel
	chromeLines    = 3  // Title, help and one spare line around the panels
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	levelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	healthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	attackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	systemLogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	statusLogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	fightLogStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// borderColor returns the panel border color for a status.
func borderColor(s termidle.Status) lipgloss.TerminalColor {
	switch s {
	case termidle.StatusVictory:
		return lipgloss.Color("2")
	case termidle.StatusGameOver:
		return lipgloss.Color("1")
	default:
		return lipgloss.NoColor{}
	}
}

// logStyle returns the style for a log category.
func logStyle(c termidle.LogCategory) lipgloss.Style {
	switch c {
	case termidle.CategorySystem:
		return systemLogStyle
	case termidle.CategoryStatus:
		return statusLogStyle
	default:
		return fightLogStyle
	}
}

// statusLabel returns the banner shown under the player stats.
func statusLabel(s termidle.Status) string {
	switch s {
	case termidle.StatusVictory:
		return "VICTORY!"
	case termidle.StatusGameOver:
		return "GAME OVER"
	default:
		return "Fighting..."
	}
}

func panelStyle(s termidle.Status) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(s)).
		Padding(0, 1)
}

// RenderGame draws a snapshot: a player panel on the left, the combat log
// (newest first, cut to fit) on the right, a title above and help below.
func RenderGame(snap termidle.Snapshot, width, height int, helpLine string) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	leftW, rightW := panelWidths(width)
	innerH := max(1, height-chromeLines-2) // minus top and bottom border

	stats := []string{
		headerStyle.Render("Player"),
		"Level:  " + levelStyle.Render(strconv.Itoa(snap.Level)),
		"Health: " + healthStyle.Render(strconv.Itoa(snap.Health)),
		"Attack: " + attackStyle.Render(strconv.Itoa(snap.Attack)),
		"",
		lipgloss.NewStyle().Foreground(borderColor(snap.Status)).Bold(true).Render(statusLabel(snap.Status)),
	}
	if len(stats) > innerH {
		stats = stats[:innerH]
	}

	lines := []string{headerStyle.Render("Combat")}
	for _, entry := range snap.Logs {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, logStyle(entry.Category).Render(entry.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(ansi.Truncate(centerText("TERMIDLE", width), width, "")),
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderPanel(snap.Status, stats, leftW, innerH),
			renderPanel(snap.Status, lines, rightW, innerH),
		),
		helpStyle.Render(ansi.Truncate(helpLine, width, "…")),
	)
}

// panelWidths splits width between the player and combat panels. Narrow
// terminals get an even split so the layout never exceeds the width.
func panelWidths(width int) (left, right int) {
	left = max(minPanelWidth, width*playerPanelPct/100)
	if width-left >= minPanelWidth {
		return left, width - left
	}
	left = max(minPanelCols, width/2)
	return left, max(minPanelCols, width-left)
}

// renderPanel draws lines in a bordered box of the given outer width.
// Lines are cut to the content width so none of them wraps.
func renderPanel(status termidle.Status, lines []string, width, height int) string {
	content := width - 4 // Border and padding on both sides
	cut := make([]string, len(lines))
	for i, line := range lines {
		cut[i] = ansi.Truncate(line, content, "…")
	}

	// Width excludes the border but includes padding.
	return panelStyle(status).
		Width(width - 2).
		Height(height).
		Render(strings.Join(cut, "\n"))
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
