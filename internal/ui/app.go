package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/readrawhex/gantry/internal/config"
	"github.com/readrawhex/gantry/internal/logtail"
	"github.com/readrawhex/gantry/internal/prefs"
	"github.com/readrawhex/gantry/internal/state"
	"github.com/readrawhex/gantry/octoprint"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewFiles
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *octoprint.Client
	Store     *state.Store
	Config    *config.Config
	Logger    zerolog.Logger
	PollTick  time.Duration
	ThemeName string
	Location  string // file browser start location: local or sdcard
	PrefsPath string
}

// filesState holds the file browser state.
type filesState struct {
	location    octoprint.Location
	entries     []octoprint.File
	free        int64
	selectedRow int
	loading     bool
}

// logState holds the log view state.
type logState struct {
	viewport viewport.Model
	lines    []string
	follow   bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *octoprint.Client
	store     *state.Store
	config    *config.Config
	logger    zerolog.Logger
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Transient message from the last command (cleared on next tick)
	errorMsg  string
	statusMsg string

	// Views
	files       filesState
	logState    logState
	progressBar progress.Model
	spinner     spinner.Model

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	location := octoprint.LocationLocal
	if opts.Location == "sdcard" {
		location = octoprint.LocationSDCard
	}

	theme := GetTheme(themeName)
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
	)

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		config:      opts.Config,
		logger:      opts.Logger,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       theme,
		currentView: ViewDashboard,
		files:       filesState{location: location},
		logState:    logState{follow: true},
		spinner:     spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.progressBar = progress.New(progress.WithDefaultGradient())
			m.initLogViewport()
		}
		m.ready = true
		m.progressBar.Width = clampProgressWidth(msg.Width)
		m.resizeLogViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case filesMsg:
		m.handleFilesMsg(msg)
		return m, nil

	case opDoneMsg:
		m.handleOpDone(msg)
		// File operations change the listing; reload when browsing.
		if msg.err == nil && msg.reload && m.currentView == ViewFiles {
			return m, m.loadFilesCmd()
		}
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "e":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "tab":
		return m.cycleView()

	case "d":
		m.currentView = ViewDashboard
		return m, nil

	case "f":
		m.currentView = ViewFiles
		return m, m.loadFilesCmd()

	case "l":
		m.currentView = ViewLogs
		return m, m.refreshLogsCmd()

	case "esc":
		m.currentView = ViewDashboard
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewFiles:
		return m.handleFilesKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// cycleView moves to the next view, kicking off that view's refresh.
func (m Model) cycleView() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDashboard:
		m.currentView = ViewFiles
		return m, m.loadFilesCmd()
	case ViewFiles:
		m.currentView = ViewLogs
		return m, m.refreshLogsCmd()
	default:
		m.currentView = ViewDashboard
		return m, nil
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Refresh logs if in log view and following
	if m.currentView == ViewLogs && m.logState.follow {
		cmds = append(cmds, m.refreshLogsCmd())
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// handleOpDone records the outcome of a printer command.
func (m *Model) handleOpDone(msg opDoneMsg) {
	if msg.err != nil {
		m.errorMsg = msg.action + ": " + truncate(msg.err.Error(), 60)
		m.statusMsg = ""
		m.logger.Warn().Err(msg.err).Str("action", msg.action).Msg("command failed")
		return
	}
	m.statusMsg = msg.action
	m.errorMsg = ""
}

// savePrefs persists the current theme and browse location.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Location: string(m.files.location),
	})
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + printer status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	switch m.currentView {
	case ViewFiles:
		b.WriteString(m.renderFiles())
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderDashboard())
	}

	return b.String()
}

func clampProgressWidth(width int) int {
	w := width - 20
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type filesMsg struct {
	location octoprint.Location
	listing  *octoprint.FileListing
	err      error
}

type opDoneMsg struct {
	action string
	err    error
	reload bool // whether the file listing should be refetched
}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// opCmd runs one client call off the UI goroutine.
func (m Model) opCmd(action string, reload bool, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{action: action, err: fn(ctx), reload: reload}
	}
}

func (m Model) refreshLogsCmd() tea.Cmd {
	path := ""
	if m.config != nil {
		path = m.config.LogPath()
	}
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, logHistoryLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.FormatLines(lines)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
