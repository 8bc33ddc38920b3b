package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readrawhex/gantry/octoprint"
)

// renderDashboard renders the printer overview: state, temperatures and
// the active job.
func (m Model) renderDashboard() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("\n")

	// Temperatures
	b.WriteString(styles.AccentText.Bold(true).Render("Temperatures"))
	b.WriteString("\n")
	if m.snapshot.HasState && len(m.snapshot.State.Temperature.Current) > 0 {
		names := make([]string, 0, len(m.snapshot.State.Temperature.Current))
		for name := range m.snapshot.State.Temperature.Current {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			reading := m.snapshot.State.Temperature.Current[name]
			b.WriteString(fmt.Sprintf("  %-8s %s\n",
				styles.MutedText.Render(name),
				styles.Text.Render(formatTemp(reading))))
		}
	} else {
		b.WriteString(styles.FaintText.Render("  no readings"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// SD card
	if m.snapshot.HasState {
		sd := ternary(m.snapshot.State.SD.Ready, "ready", "not ready")
		b.WriteString(styles.MutedText.Render("SD card: "))
		b.WriteString(styles.Text.Render(sd))
		b.WriteString("\n\n")
	}

	// Job
	b.WriteString(styles.AccentText.Bold(true).Render("Job"))
	b.WriteString("\n")
	b.WriteString(m.renderJob())

	// Key hints for this view
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("  <s> start  <space> pause/resume  <c> cancel  <R> restart  <H> home"))
	b.WriteString("\n")

	return b.String()
}

// renderJob renders the active job block with a progress bar.
func (m Model) renderJob() string {
	styles := m.theme.Styles()

	if !m.snapshot.HasJob || m.snapshot.Job.Job.File.Name == "" {
		return styles.FaintText.Render("  no file selected") + "\n"
	}

	job := m.snapshot.Job
	var b strings.Builder

	name := job.Job.File.Display
	if name == "" {
		name = job.Job.File.Name
	}
	b.WriteString("  ")
	b.WriteString(styles.Text.Render(truncateMiddle(name, m.width-4)))
	b.WriteString("\n")

	if job.State != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(job.State))
		if job.Error != "" {
			b.WriteString("  ")
			b.WriteString(styles.DangerText.Render(job.Error))
		}
		b.WriteString("\n")
	}

	if job.Progress.Completion > 0 {
		b.WriteString("  ")
		b.WriteString(m.progressBar.ViewAs(job.Progress.Completion / 100))
		b.WriteString(styles.Text.Render(fmt.Sprintf(" %.1f%%", job.Progress.Completion)))
		b.WriteString("\n")
	}

	elapsed := job.Progress.Elapsed()
	remaining := job.Progress.Remaining()
	if elapsed > 0 || remaining > 0 {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render("elapsed "))
		b.WriteString(styles.Text.Render(humanizeDuration(elapsed)))
		if remaining > 0 {
			b.WriteString(styles.MutedText.Render("  remaining "))
			b.WriteString(styles.Text.Render(humanizeDuration(remaining)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// handleDashboardKey processes keyboard input for the dashboard view.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	client := m.client
	if client == nil {
		return m, nil
	}

	switch msg.String() {
	case "s":
		return m, m.opCmd("print started", false, client.StartJob)
	case " ":
		return m, m.opCmd("pause toggled", false, client.TogglePause)
	case "c":
		return m, m.opCmd("print cancelled", false, client.CancelJob)
	case "R":
		return m, m.opCmd("print restarted", false, client.RestartJob)
	case "H":
		return m, m.opCmd("homing", false, func(ctx context.Context) error {
			return client.Home(ctx, true, true, true)
		})
	case "C":
		return m, m.opCmd("connecting printer", false, func(ctx context.Context) error {
			return client.Connect(ctx, octoprint.ConnectOptions{})
		})
	case "D":
		return m, m.opCmd("printer disconnected", false, client.Disconnect)
	}

	return m, nil
}
