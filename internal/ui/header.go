package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/readrawhex/gantry/octoprint"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string

	// Logo
	parts = append(parts, bg.Render("gantry", styles.Logo))

	// Printer state badge, with a spinner until the first poll lands
	word := m.statusWord()
	if word == "connecting" {
		parts = append(parts, m.spinner.View()+styles.StatusStyle(word).Render(strings.ToUpper(word)))
	} else {
		parts = append(parts, styles.StatusStyle(word).Render(strings.ToUpper(word)))
	}

	if m.snapshot.HasState {
		// State text from the server when it adds detail
		text := m.snapshot.State.State.Text
		if text != "" && !strings.EqualFold(text, word) {
			parts = append(parts, bg.Render(text, styles.MutedText))
		}

		// Hotend and bed temperatures
		if temps := m.formatHeaterSummary(); temps != "" {
			parts = append(parts, bg.Render(temps, styles.InfoText))
		}
	}

	// Job completion
	if m.snapshot.HasJob && m.snapshot.Job.Progress.Completion > 0 {
		parts = append(parts, bg.Render(
			fmt.Sprintf("%.1f%%", m.snapshot.Job.Progress.Completion),
			styles.AccentText,
		))
	}

	// Timestamp with relative indicator
	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	// Poll error
	if m.snapshot.LastError != nil {
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Space()+
				bg.Render(classifyConnectionError(m.snapshot.LastError), styles.DangerText),
		)
	}

	// Transient command outcome
	if m.errorMsg != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.errorMsg, styles.WarningText),
		)
	} else if m.statusMsg != "" {
		parts = append(parts, bg.Render(m.statusMsg, styles.SuccessText))
	}

	content := bg.Join(parts, "  ")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderCommandBar renders the key hint line below the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	hints := []struct{ key, desc string }{
		{"d", "dashboard"},
		{"f", "files"},
		{"l", "logs"},
		{"h", "help"},
		{"e", "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		parts = append(parts,
			bg.Render("<"+hint.key+">", styles.AccentText)+bg.Space()+
				bg.Render(hint.desc, styles.MutedText))
	}

	return NewBgStyle(m.theme.SurfaceAlt).FillLine(bg.Join(parts, "  "), m.width)
}

// statusWord reduces the snapshot to a single state word for the badge.
func (m Model) statusWord() string {
	if m.snapshot.IsOffline() {
		return "offline"
	}
	if !m.snapshot.HasState {
		if m.snapshot.LastError != nil {
			return "error"
		}
		return "connecting"
	}

	flags := m.snapshot.State.State.Flags
	switch {
	case flags.Cancelling:
		return "cancelling"
	case flags.Pausing:
		return "pausing"
	case flags.Paused:
		return "paused"
	case flags.Printing:
		return "printing"
	case flags.Error, flags.ClosedOrError:
		return "error"
	case flags.Operational:
		return "operational"
	default:
		return "offline"
	}
}

// formatHeaterSummary builds "E 214.8°/215.0° B 60.1°/60.0°" from the
// current readings, tools first.
func (m Model) formatHeaterSummary() string {
	current := m.snapshot.State.Temperature.Current
	if len(current) == 0 {
		return ""
	}

	var parts []string
	for i := 0; ; i++ {
		name := fmt.Sprintf("tool%d", i)
		reading, ok := current[name]
		if !ok {
			break
		}
		label := "E"
		if i > 0 {
			label = fmt.Sprintf("E%d", i)
		}
		parts = append(parts, label+" "+formatTemp(reading))
	}
	if bed, ok := current["bed"]; ok {
		parts = append(parts, "B "+formatTemp(bed))
	}
	return strings.Join(parts, "  ")
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of a poll failure.
// A 409 means OctoPrint is up but the printer itself is not operational,
// which deserves a different message than an unreachable server.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *octoprint.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusConflict:
			return "printer not operational"
		case http.StatusUnauthorized, http.StatusForbidden:
			return "API key rejected"
		default:
			return fmt.Sprintf("server error (HTTP %d)", httpErr.StatusCode)
		}
	}

	var transportErr *octoprint.TransportError
	if errors.As(err, &transportErr) {
		return "server unreachable"
	}

	return truncate(err.Error(), 60)
}
