package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab", "Cycle views"},
				{"d/f/l", "Dashboard/Files/Logs"},
				{"esc", "Return to dashboard"},
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
			},
		},
		{
			title: "Printer",
			items: []helpItem{
				{"s", "Start print"},
				{"space", "Pause/resume"},
				{"c", "Cancel print"},
				{"R", "Restart print"},
				{"H", "Home all axes"},
				{"C/D", "Connect/disconnect printer"},
			},
		},
		{
			title: "Files",
			items: []helpItem{
				{"enter", "Select file"},
				{"p", "Select and print"},
				{"x", "Delete file"},
				{"o", "Toggle local/sdcard"},
				{"r", "Refresh listing"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"e/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
