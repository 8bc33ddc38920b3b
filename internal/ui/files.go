package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readrawhex/gantry/octoprint"
)

// loadFilesCmd fetches the listing for the current browse location.
func (m Model) loadFilesCmd() tea.Cmd {
	client := m.client
	if client == nil {
		return nil
	}
	ctx := m.ctx
	location := m.files.location
	return func() tea.Msg {
		listing, err := client.Files(ctx, location, octoprint.ListOptions{})
		return filesMsg{location: location, listing: listing, err: err}
	}
}

// handleFilesMsg applies a fetched listing to the browser state.
func (m *Model) handleFilesMsg(msg filesMsg) {
	m.files.loading = false
	if msg.err != nil {
		m.errorMsg = "file listing: " + classifyConnectionError(msg.err)
		m.logger.Warn().Err(msg.err).Str("location", string(msg.location)).Msg("file listing failed")
		return
	}
	if msg.location != m.files.location {
		// Stale response from before a location toggle.
		return
	}
	m.files.entries = flattenFiles(msg.listing.Files)
	m.files.free = msg.listing.Free
	if m.files.selectedRow >= len(m.files.entries) {
		m.files.selectedRow = 0
	}
}

// flattenFiles expands folders so their children appear under them.
func flattenFiles(files []octoprint.File) []octoprint.File {
	var out []octoprint.File
	for _, f := range files {
		out = append(out, f)
		if f.IsFolder() && len(f.Children) > 0 {
			out = append(out, flattenFiles(f.Children)...)
		}
	}
	return out
}

// handleFilesKey processes keyboard input for the file browser.
func (m Model) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.files.entries

	switch msg.String() {
	case "j", "down":
		if m.files.selectedRow < len(entries)-1 {
			m.files.selectedRow++
		}
	case "k", "up":
		if m.files.selectedRow > 0 {
			m.files.selectedRow--
		}
	case "g", "home":
		m.files.selectedRow = 0
	case "G", "end":
		if len(entries) > 0 {
			m.files.selectedRow = len(entries) - 1
		}

	case "o":
		// Toggle browse location
		if m.files.location == octoprint.LocationLocal {
			m.files.location = octoprint.LocationSDCard
		} else {
			m.files.location = octoprint.LocationLocal
		}
		m.files.selectedRow = 0
		m.files.loading = true
		m.savePrefs()
		return m, m.loadFilesCmd()

	case "r":
		m.files.loading = true
		return m, m.loadFilesCmd()

	case "enter":
		if file := m.selectedFile(); file != nil && !file.IsFolder() {
			path := filePath(*file)
			return m, m.opCmd("selected "+file.Name, false, func(ctx context.Context) error {
				return m.client.SelectFile(ctx, path, false)
			})
		}

	case "p":
		if file := m.selectedFile(); file != nil && !file.IsFolder() {
			path := filePath(*file)
			return m, m.opCmd("printing "+file.Name, false, func(ctx context.Context) error {
				return m.client.SelectFile(ctx, path, true)
			})
		}

	case "x":
		if file := m.selectedFile(); file != nil && !file.IsFolder() {
			path := filePath(*file)
			return m, m.opCmd("deleted "+file.Name, true, func(ctx context.Context) error {
				return m.client.DeleteFile(ctx, path)
			})
		}
	}

	return m, nil
}

// selectedFile returns the highlighted entry, or nil when empty.
func (m Model) selectedFile() *octoprint.File {
	if m.files.selectedRow < 0 || m.files.selectedRow >= len(m.files.entries) {
		return nil
	}
	return &m.files.entries[m.files.selectedRow]
}

// filePath builds the location-prefixed path the per-file API expects.
func filePath(f octoprint.File) string {
	origin := f.Origin
	if origin == "" {
		origin = string(octoprint.LocationLocal)
	}
	return origin + "/" + f.Path
}

// renderFiles renders the file browser.
func (m Model) renderFiles() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString("\n")

	// Location header
	title := fmt.Sprintf("Files: %s", m.files.location)
	if m.files.location == octoprint.LocationLocal && m.files.free > 0 {
		title += fmt.Sprintf("  (%s free)", formatBytes(m.files.free))
	}
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	if m.files.loading {
		b.WriteString(styles.FaintText.Render("  loading..."))
	}
	b.WriteString("\n\n")

	if len(m.files.entries) == 0 {
		b.WriteString(styles.FaintText.Render("  no files"))
		b.WriteString("\n")
	}

	visible := m.visibleFileRows()
	selectedName := ""
	if m.snapshot.HasJob {
		selectedName = m.snapshot.Job.Job.File.Path
	}

	for i, file := range m.files.entries {
		if i < visible.start || i >= visible.end {
			continue
		}

		line := m.formatFileRow(file, selectedName)
		if i == m.files.selectedRow {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("  <enter> select  <p> print  <x> delete  <o> toggle location  <r> refresh"))
	b.WriteString("\n")

	return b.String()
}

// formatFileRow renders one listing row: marker, name, size, date.
func (m Model) formatFileRow(file octoprint.File, selectedPath string) string {
	styles := m.theme.Styles()

	marker := "  "
	if file.Path == selectedPath && selectedPath != "" {
		marker = "▶ "
	}

	name := file.Display
	if name == "" {
		name = file.Name
	}
	if file.IsFolder() {
		name += "/"
	}
	name = truncateMiddle(name, 48)

	size := ""
	if !file.IsFolder() && file.Size > 0 {
		size = formatBytes(file.Size)
	}

	date := ""
	if ts := file.ModTime(); !ts.IsZero() {
		date = ts.Format("2006-01-02 15:04")
	}

	nameStyle := styles.Text
	if file.IsFolder() {
		nameStyle = styles.AccentText
	}

	return fmt.Sprintf("%s%s %s %s",
		marker,
		nameStyle.Width(50).Render(name),
		styles.MutedText.Width(12).Render(size),
		styles.FaintText.Render(date))
}

type rowRange struct {
	start, end int
}

// visibleFileRows windows the listing around the selection so it fits
// the terminal height.
func (m Model) visibleFileRows() rowRange {
	maxRows := m.height - 8
	if maxRows < 3 {
		maxRows = 3
	}
	total := len(m.files.entries)
	if total <= maxRows {
		return rowRange{0, total}
	}

	start := m.files.selectedRow - maxRows/2
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > total {
		end = total
		start = end - maxRows
	}
	return rowRange{start, end}
}
