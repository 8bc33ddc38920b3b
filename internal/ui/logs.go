package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const logHistoryLines = 400

func (m *Model) initLogViewport() {
	m.logState.viewport = viewport.New(m.width, m.logViewportHeight())
}

func (m *Model) resizeLogViewport() {
	m.logState.viewport.Width = m.width
	m.logState.viewport.Height = m.logViewportHeight()
}

func (m Model) logViewportHeight() int {
	// Header, command bar, title, footer hint
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

// handleLogLines applies a freshly read batch of log lines.
func (m *Model) handleLogLines(msg logLinesMsg) {
	if msg.err != nil {
		m.errorMsg = "logs: " + truncate(msg.err.Error(), 60)
		return
	}
	m.logState.lines = msg.lines
	m.logState.viewport.SetContent(strings.Join(msg.lines, "\n"))
	if m.logState.follow {
		m.logState.viewport.GotoBottom()
	}
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		// Toggle follow mode; re-enabling jumps to the tail
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logState.viewport.GotoBottom()
		}
		return m, nil

	case "j", "down":
		m.logState.follow = false
		m.logState.viewport.ScrollDown(1)
		return m, nil

	case "k", "up":
		m.logState.follow = false
		m.logState.viewport.ScrollUp(1)
		return m, nil

	case "ctrl+d":
		m.logState.follow = false
		m.logState.viewport.HalfPageDown()
		return m, nil

	case "ctrl+u":
		m.logState.follow = false
		m.logState.viewport.HalfPageUp()
		return m, nil

	case "g":
		m.logState.follow = false
		m.logState.viewport.GotoTop()
		return m, nil

	case "G":
		m.logState.viewport.GotoBottom()
		return m, nil
	}

	return m, nil
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	var b strings.Builder

	title := "Logs"
	if m.config != nil {
		title += "  " + truncateMiddle(m.config.LogPath(), 60)
	}
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(ternary(m.logState.follow, "following", "paused")))
	b.WriteString("\n")

	if len(m.logState.lines) == 0 {
		b.WriteString(styles.FaintText.Render("  no log entries"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.logState.viewport.View())
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("  <space> follow  <j/k> scroll  <g/G> top/bottom"))

	return b.String()
}
