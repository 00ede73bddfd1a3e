package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/games/skymemory"
	"github.com/vovakirdan/sky-memory/internal/session"
	"github.com/vovakirdan/sky-memory/internal/storage"
)

// helpRows is the number of rows reserved below the board for key help.
const helpRows = 1

// PlayOptions configures a play model.
type PlayOptions struct {
	Config  config.Config
	Level   int // 0-based campaign index
	Store   *storage.Store
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Standalone quits the program when the player leaves the level.
	// Hosts that return to a menu leave it false and poll BackToMenu.
	Standalone bool
}

// Model is the Bubble Tea model for playing Sky Memory levels.
type Model struct {
	game       *skymemory.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	clock      *session.FrameClock
	keys       PlayKeyMap
	help       help.Model
	logger     *log.Logger
	standalone bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a play model for the level in opts.
func NewModel(opts PlayOptions) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	store := opts.Store
	gameOpts := skymemory.Options{
		Config: opts.Config,
		Level:  opts.Level,
		Logger: logger,
		OnFinish: func(res skymemory.Result) {
			saveResult(store, logger, res)
		},
	}
	if store != nil {
		gameOpts.Wallet = func(lvl config.Level) session.Wallet {
			return store.Wallet("level: " + lvl.Name)
		}
		gameOpts.Skins = store.SkinProvider()
	}

	return Model{
		game:       skymemory.New(gameOpts),
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		clock:      session.NewFrameClock(session.DefaultMaxFrame),
		keys:       DefaultPlayKeyMap(),
		help:       help.New(),
		logger:     logger,
		standalone: opts.Standalone,
		inputFrame: core.NewInputFrame(),
	}
}

// boardHeight is the part of the terminal given to the game.
func boardHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// runtime returns the runtime config sized for the board.
func (m Model) runtime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = boardHeight(rt.ScreenH)
	return rt
}

// Init starts the first level and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime())
	if err := m.game.Err(); err != nil {
		m.logger.Error("level did not start", "err", err)
	}
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.leave()
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleMouse turns left clicks on the board into taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < m.screen.Height() {
		m.inputFrame.AddTap(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	// The grid is laid out from the viewport, so a resize starts a new
	// attempt. Finished attempts keep their result banner.
	if !m.gameState.GameOver {
		m.leave()
		m.game.Reset(m.runtime())
		m.clock.Reset()
	}

	return m, nil
}

// handleTick advances the game by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// A resume or restart must not replay the time spent away.
	if (m.inputFrame.Has(core.ActionPause) && m.gameState.Paused) || m.inputFrame.Has(core.ActionRestart) {
		m.clock.Reset()
	}
	if m.inputFrame.Has(core.ActionRestart) {
		m.leave()
	}

	m.inputFrame.Dt = m.clock.Delta(now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// leave records the running attempt as abandoned.
func (m Model) leave() {
	if res, ok := m.game.Pending(); ok {
		saveResult(m.store, m.logger, res)
	}
}

// saveResult stores a finished or abandoned attempt in the history.
func saveResult(store *storage.Store, logger *log.Logger, res skymemory.Result) {
	outcome := "abandoned"
	switch res.Outcome.State {
	case session.StateWon:
		outcome = "won"
	case session.StateLost:
		outcome = "lost"
	}
	logger.Info("attempt finished",
		"session", res.SessionID,
		"level", res.Level+1,
		"outcome", outcome,
		"stars", res.Outcome.Stars,
		"reward", res.Outcome.Reward,
	)
	if store == nil {
		return
	}

	reward := 0
	if res.Outcome.Credited {
		reward = res.Outcome.Reward
	}
	err := store.SaveSession(storage.SessionRecord{
		ID:        res.SessionID,
		Level:     res.Level,
		LevelName: res.LevelName,
		Outcome:   outcome,
		Stars:     res.Outcome.Stars,
		Coins:     res.Coins,
		Reward:    reward,
		Duration:  res.Outcome.Elapsed,
	})
	if err != nil {
		logger.Error("cannot save attempt", "session", res.SessionID, "err", err)
	}
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".skymemory", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_level%d_%s.txt", m.game.ID(), m.game.Level()+1, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// BackToMenu reports whether the player asked to return to the level picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Level returns the level being played, which advances with "next level".
func (m Model) Level() int {
	return m.game.Level()
}

// View renders the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	board := RenderScreen(m.screen)
	helpView := m.help.View(m.keys)
	// The full help is taller than the reserved row and covers the
	// bottom of the board.
	if extra := strings.Count(helpView, "\n"); extra > 0 {
		lines := strings.Split(board, "\n")
		board = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}
	return board + "\n" + helpView
}

// Run starts a standalone Bubble Tea program for one level.
// Returns true if the player left for the level picker, false if quitting.
func Run(opts PlayOptions) (goBack bool, err error) {
	opts.Standalone = true
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}

	return m.BackToMenu(), nil
}
