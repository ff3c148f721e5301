package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evohq/evopanel/internal/backend"
	"github.com/evohq/evopanel/internal/prefs"
	"github.com/evohq/evopanel/internal/state"
)

// Options configure the UI program.
type Options struct {
	Context   context.Context
	Client    *backend.Client
	Stores    *state.Stores
	PollTick  time.Duration
	ThemeName string
	StartTab  string
	PrefsPath string
}

type tab int

const (
	tabMocks tab = iota
	tabDatabases
	tabLogs
	tabServer
	tabCount
)

// slug is the stable name persisted in prefs.
func (t tab) slug() string {
	switch t {
	case tabDatabases:
		return "databases"
	case tabLogs:
		return "logs"
	case tabServer:
		return "server"
	default:
		return "mocks"
	}
}

func tabFromSlug(s string) tab {
	switch s {
	case "databases":
		return tabDatabases
	case "logs":
		return tabLogs
	case "server":
		return tabServer
	default:
		return tabMocks
	}
}

// Model is the root Bubble Tea model. All durable state lives in the
// injected stores; the model only holds view-local state such as
// cursors, open forms and the active tab.
type Model struct {
	ctx    context.Context
	client *backend.Client
	stores *state.Stores

	keys      keyMap
	themeName string
	styles    Styles
	prefsPath string

	activeTab tab
	width     int
	height    int
	showHelp  bool

	mocks     mocksView
	databases databasesView
	logs      logsView
	server    serverView
}

// New builds the root model from injected collaborators.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	return Model{
		ctx:       opts.Context,
		client:    opts.Client,
		stores:    opts.Stores,
		keys:      defaultKeyMap(),
		themeName: theme.Name,
		styles:    theme.Styles(),
		prefsPath: opts.PrefsPath,
		activeTab: tabFromSlug(opts.StartTab),
		logs:      newLogsView(),
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.fetchMocksCmd(), m.fetchDatabasesCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The stores are re-read on every render; the tick only keeps
		// the render loop moving so TTL expiry and streamed log
		// entries show up without user input.
		return m, tickCmd()

	case mocksMsg:
		m.mocks.loadErr = msg.err
		if msg.err == nil {
			m.mocks.list = msg.mocks
			m.mocks.cursor = clampCursor(m.mocks.cursor, len(m.mocks.list))
		}
		return m, nil

	case databasesMsg:
		m.databases.loadErr = msg.err
		if msg.err == nil {
			m.databases.list = msg.databases
			m.databases.cursor = clampCursor(m.databases.cursor, len(m.databases.list))
		}
		return m, nil

	case actionMsg:
		return m.handleAction(msg)

	case confirmResultMsg:
		if msg.accepted && msg.next != nil {
			return m, msg.next
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleAction turns a completed backend call into a toast and, for
// mutations that change a listing, a reconciling fetch.
func (m Model) handleAction(msg actionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.stores.Notifier.Error("Failed to " + msg.action + ": " + msg.err.Error())
		return m, nil
	}

	switch msg.action {
	case "add mock", "update mock", "remove mock":
		m.stores.Notifier.Success("Mock " + verbPast(msg.action))
		return m, m.fetchMocksCmd()
	case "add database", "remove database":
		m.stores.Notifier.Success("Database " + verbPast(msg.action))
		return m, m.fetchDatabasesCmd()
	case "test connection":
		detail := msg.detail
		if detail == "" {
			detail = "Connection OK"
		}
		m.stores.Notifier.Success(detail)
	case "clear logs":
		m.stores.Notifier.Success("Request log cleared")
	case "start server":
		m.stores.Notifier.Success("Server started")
	case "stop server":
		m.stores.Notifier.Success("Server stopped")
	case "restart server":
		m.stores.Notifier.Success("Server restarted")
	case "save config":
		m.stores.Notifier.Success("Configuration saved")
	case "refresh logs", "refresh status":
		// Silent on success, the updated stores speak for themselves.
	}
	return m, nil
}

func verbPast(action string) string {
	switch {
	case len(action) > 3 && action[:3] == "add":
		return "added"
	case len(action) > 6 && action[:6] == "update":
		return "updated"
	default:
		return "removed"
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirmation modal captures everything while visible.
	if m.stores.Confirms.Current() != nil {
		return m.updateModal(msg)
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	formOpen := m.formOpen()

	if !formOpen {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.savePrefs()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.themeName = NextTheme(m.themeName)
			m.styles = GetTheme(m.themeName).Styles()
			m.savePrefs()
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		}
		switch msg.String() {
		case "1":
			m.activeTab = tabMocks
			return m, nil
		case "2":
			m.activeTab = tabDatabases
			return m, nil
		case "3":
			m.activeTab = tabLogs
			return m, nil
		case "4":
			m.activeTab = tabServer
			return m, nil
		}
	} else if msg.String() == "ctrl+c" {
		m.savePrefs()
		return m, tea.Quit
	}

	switch m.activeTab {
	case tabMocks:
		return m.updateMocks(msg)
	case tabDatabases:
		return m.updateDatabases(msg)
	case tabLogs:
		return m.updateLogs(msg)
	default:
		return m.updateServer(msg)
	}
}

// formOpen reports whether any tab currently shows an editor, in which
// case plain letter keys belong to the text inputs.
func (m Model) formOpen() bool {
	return m.mocks.form != nil ||
		m.databases.form != nil ||
		m.server.form != nil ||
		m.logs.searching
}

func (m Model) savePrefs() {
	path := m.prefsPath
	if path == "" {
		path = prefs.DefaultPath()
	}
	p := prefs.Prefs{Theme: m.themeName, Tab: m.activeTab.slug()}
	if err := prefs.Save(path, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m Model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = m.viewHelp()
	case m.activeTab == tabMocks:
		body = m.viewMocks()
	case m.activeTab == tabDatabases:
		body = m.viewDatabases()
	case m.activeTab == tabLogs:
		body = m.viewLogs()
	default:
		body = m.viewServer()
	}

	sections := []string{m.viewHeader(), "", body}
	if toasts := m.viewToasts(); toasts != "" {
		sections = append(sections, "", toasts)
	}
	sections = append(sections, "", m.viewFooter())
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.stores.Confirms.Current() != nil {
		return m.viewModal(screen)
	}
	return screen
}
