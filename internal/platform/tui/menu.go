package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/storage"
)

// MenuItem represents a selectable level in the picker.
type MenuItem struct {
	Level    int // 0-based campaign index
	Name     string
	Columns  int
	Rows     int
	Stake    int
	Best     storage.LevelBest
	Unlocked bool
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	balance     int
	skin        string
	store       *storage.Store
	levels      config.Config
	config      core.RuntimeConfig
	quitting    bool
	selected    *MenuItem // Set when user selects a level
	openHistory bool      // True if user pressed Tab for history
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuStarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// NewMenuModel creates a level picker. A nil store shows every level
// unlocked and no wallet line.
func NewMenuModel(store *storage.Store, levels config.Config, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		levels: levels,
		config: cfg,
	}
	m.refresh()
	return m
}

// refresh reloads progress and wallet data from the store.
func (m *MenuModel) refresh() {
	var bests map[int]storage.LevelBest
	if m.store != nil {
		var err error
		if bests, err = m.store.LevelBests(); err != nil {
			log.Warn("cannot load level progress", "err", err)
		}
		if m.balance, err = m.store.Balance(); err != nil {
			log.Warn("cannot load balance", "err", err)
		}
		if id, err := m.store.SelectedSkin(); err == nil {
			if skin, ok := storage.SkinByID(id); ok {
				m.skin = skin.Name
			}
		}
	}

	m.items = m.items[:0]
	for i := range m.levels.LevelCount() {
		lvl, _ := m.levels.Level(i)
		// A level opens once the previous one has been won.
		unlocked := m.store == nil || i == 0 || bests[i-1].Wins > 0
		m.items = append(m.items, MenuItem{
			Level:    i,
			Name:     lvl.Name,
			Columns:  lvl.Columns,
			Rows:     lvl.Rows,
			Stake:    lvl.Stake,
			Best:     bests[i],
			Unlocked: unlocked,
		})
	}
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 && m.items[m.cursor].Unlocked {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit // Exit menu to show history
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S K Y   M E M O R Y  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Watch the path, then climb it from memory", m.width))
	b.WriteString("\n")
	if m.store != nil {
		wallet := fmt.Sprintf("Coins: %d   Plane: %s", m.balance, m.skin)
		b.WriteString(centerText(wallet, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.renderItem(i, item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem formats one level line.
func (m MenuModel) renderItem(i int, item MenuItem) string {
	cursor := "  "
	if i == m.cursor {
		cursor = menuCursorStyle.Render("> ")
	}

	line := fmt.Sprintf("%d. %-16s %dx%d  stake %4d", item.Level+1, item.Name, item.Columns, item.Rows, item.Stake)
	if !item.Unlocked {
		return cursor + menuLockedStyle.Render(line+"  locked")
	}
	return cursor + line + "  " + menuStarStyle.Render(starString(item.Best.BestStars))
}

// starString draws a 0..3 star rating.
func starString(stars int) string {
	stars = core.Clamp(stars, 0, 3)
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level        int
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(store *storage.Store, levels config.Config, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, levels, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsHistory() {
		result.WantsHistory = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Level = m.Selected().Level
	} else {
		result.Quit = true
	}

	return result, nil
}
