package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ametelin/tui-simlab/internal/registry"
	"github.com/ametelin/tui-simlab/internal/storage"
)

// Session log layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show sim list sidebar
	sidebarWidth       = 20  // Width of sim list sidebar
	maxSessions        = 100 // Max sessions to load
)

// SessionsKeyMap defines the key bindings for the session log screen.
type SessionsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextSim key.Binding
	PrevSim key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSim, k.PrevSim, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSim, k.PrevSim},
		{k.Back, k.Quit},
	}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev sim"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next sim"),
		),
		NextSim: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next sim"),
		),
		PrevSim: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev sim"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for the session log screen.
type SessionsModel struct {
	sims        []registry.SimInfo // List of available simulations
	simCursor   int                // Currently selected sim index
	store       *storage.Store     // Session storage
	sessions    []storage.SessionEntry
	table       table.Model
	help        help.Model
	keys        SessionsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show sim list sidebar
}

// NewSessionsModel creates a new session log model.
func NewSessionsModel(store *storage.Store, width, height int) SessionsModel {
	keys := DefaultSessionsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		sims:        registry.List(),
		simCursor:   0,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.sims) > 0 {
		m.loadSessions(m.sims[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Ticks", Width: 10},
		{Title: "Sim Time", Width: 12},
		{Title: "Snapshots", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads recorded runs for the given sim ID.
func (m *SessionsModel) loadSessions(simID string) {
	if m.store == nil {
		m.sessions = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(simID, maxSessions)
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current sessions.
func (m *SessionsModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.Ticks),
			fmt.Sprintf("%.1fs", s.SimSeconds),
			fmt.Sprintf("%d", s.Snapshots),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the session log model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session log.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSim), key.Matches(msg, m.keys.Right):
			if len(m.sims) > 0 {
				m.simCursor = (m.simCursor + 1) % len(m.sims)
				m.loadSessions(m.sims[m.simCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSim), key.Matches(msg, m.keys.Left):
			if len(m.sims) > 0 {
				m.simCursor--
				if m.simCursor < 0 {
					m.simCursor = len(m.sims) - 1
				}
				m.loadSessions(m.sims[m.simCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session log.
func (m SessionsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SESSION LOG"
	if len(m.sims) > 0 {
		title = fmt.Sprintf("SESSION LOG - %s", m.sims[m.simCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the session log with a sidebar for sim selection.
func (m SessionsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Simulations\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.sims {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.simCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := s.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the session log with sim tabs above the table.
func (m SessionsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.sims))
	for i, s := range m.sims {
		shortName := s.Title
		if len(shortName) > 10 {
			shortName = shortName[:9] + "."
		}
		if i == m.simCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current sim with arrows
		tabLine = fmt.Sprintf("< %s >", m.sims[m.simCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m SessionsModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nRun a simulation to populate the log!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m SessionsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SessionsModel) IsQuitting() bool {
	return m.quitting
}

// RunSessions runs the session log screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunSessions(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewSessionsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SessionsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
