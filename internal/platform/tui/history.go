package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-memory/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the view list sidebar
	sidebarWidth       = 20  // Width of view list sidebar
	maxHistoryRows     = 100 // Max rows to load per view
)

// historyView is one tab of the history screen.
type historyView int

const (
	viewAttempts historyView = iota
	viewLevels
	viewLedger
	historyViewCount
)

func (v historyView) String() string {
	switch v {
	case viewAttempts:
		return "Attempts"
	case viewLevels:
		return "Levels"
	case viewLedger:
		return "Wallet"
	default:
		return "?"
	}
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextView key.Binding
	PrevView key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
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
			key.WithHelp("left/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev view"),
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

// HistoryModel is the Bubble Tea model for the history screen.
type HistoryModel struct {
	view        historyView
	store       *storage.Store
	rows        []table.Row
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the view list sidebar
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

// columns returns the table columns of the current view.
func (m *HistoryModel) columns() []table.Column {
	switch m.view {
	case viewLevels:
		return []table.Column{
			{Title: "Level", Width: 18},
			{Title: "Plays", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Best", Width: 6},
		}
	case viewLedger:
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Amount", Width: 8},
			{Title: "Balance", Width: 8},
			{Title: "Reason", Width: 22},
		}
	default:
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Level", Width: 16},
			{Title: "Result", Width: 9},
			{Title: "Stars", Width: 5},
			{Title: "Reward", Width: 6},
			{Title: "Time", Width: 6},
		}
	}
}

// createTable creates a table for the current view sized to the window.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load rebuilds the table for the current view from the store.
func (m *HistoryModel) load() {
	m.table = m.createTable()
	m.rows = nil
	if m.store != nil {
		rows, err := m.loadRows()
		if err != nil {
			log.Warn("cannot load history", "view", m.view, "err", err)
		}
		m.rows = rows
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *HistoryModel) loadRows() ([]table.Row, error) {
	switch m.view {
	case viewLevels:
		bests, err := m.store.LevelBests()
		if err != nil {
			return nil, err
		}
		levels := make([]int, 0, len(bests))
		for lvl := range bests {
			levels = append(levels, lvl)
		}
		sort.Ints(levels)
		rows := make([]table.Row, 0, len(levels))
		for _, lvl := range levels {
			b := bests[lvl]
			rows = append(rows, table.Row{
				fmt.Sprintf("Level %d", lvl+1),
				fmt.Sprintf("%d", b.Plays),
				fmt.Sprintf("%d", b.Wins),
				starString(b.BestStars),
			})
		}
		return rows, nil

	case viewLedger:
		entries, err := m.store.Ledger(maxHistoryRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(entries))
		for i, e := range entries {
			rows[i] = table.Row{
				e.CreatedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%+d", e.Amount),
				fmt.Sprintf("%d", e.BalanceAfter),
				e.Reason,
			}
		}
		return rows, nil

	default:
		records, err := m.store.RecentSessions(maxHistoryRows)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(records))
		for i, r := range records {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%d. %s", r.Level+1, r.LevelName),
				r.Outcome,
				fmt.Sprintf("%d", r.Stars),
				fmt.Sprintf("%d", r.Reward),
				fmt.Sprintf("%.1fs", r.Duration),
			}
		}
		return rows, nil
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.Right):
			m.view = (m.view + 1) % historyViewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView), key.Matches(msg, m.keys.Left):
			m.view = (m.view + historyViewCount - 1) % historyViewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("FLIGHT LOG - %s", m.view)
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

var historyBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the view list beside the table.
func (m HistoryModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for v := range historyViewCount {
		cursor := "  "
		style := lipgloss.NewStyle()
		if v == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + v.String()))
		sidebar.WriteString("\n")
	}

	sidebarRendered := historyBoxStyle.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := historyBoxStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders view tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, historyViewCount)
	for v := range historyViewCount {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+v.String()+" "))
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(historyBoxStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nClimb a level to fill the log!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
