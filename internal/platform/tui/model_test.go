package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/games/skymemory"
	"github.com/vovakirdan/sky-memory/internal/session"
	"github.com/vovakirdan/sky-memory/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(store *storage.Store, standalone bool) Model {
	m := NewModel(PlayOptions{
		Config:     config.Default(),
		Store:      store,
		Runtime:    testRuntime(),
		Logger:     log.New(io.Discard),
		Standalone: standalone,
	})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func TestModelBoardLeavesHelpRow(t *testing.T) {
	m := newTestModel(nil, true)

	if h := m.screen.Height(); h != 23 {
		t.Errorf("board height = %d, expected 23", h)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if w, h := m.screen.Width(), m.screen.Height(); w != 60 || h != 19 {
		t.Errorf("board size = %dx%d, expected 60x19", w, h)
	}
}

func TestModelMouseTaps(t *testing.T) {
	m := newTestModel(nil, true)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	// Clicks on the help row are ignored.
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if len(m.inputFrame.Taps) != 1 {
		t.Fatalf("taps = %d, expected 1", len(m.inputFrame.Taps))
	}
	if tap := m.inputFrame.Taps[0]; tap.X != 10 || tap.Y != 5 {
		t.Errorf("tap = %+v, expected (10,5)", tap)
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if len(m.inputFrame.Taps) != 0 {
		t.Error("taps not cleared after tick")
	}
}

func TestModelBack(t *testing.T) {
	tests := []struct {
		name       string
		standalone bool
		wantCmd    bool
	}{
		{"standalone quits", true, true},
		{"hosted returns to menu", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(nil, tt.standalone)
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			if !m.BackToMenu() {
				t.Error("BackToMenu() = false, expected true")
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd returned = %v, expected %v", cmd != nil, tt.wantCmd)
			}
			if m.IsQuitting() != tt.standalone {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.standalone)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil, false)
	m, cmd := update(t, m, runeKey("q"))

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(nil, true)
	m, _ = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("help.ShowAll = false after ?, expected true")
	}
	m, _ = update(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("help.ShowAll = true after second ?, expected false")
	}
}

func TestModelLeavingRecordsAbandoned(t *testing.T) {
	store := testStore(t)
	m := newTestModel(store, false)

	// Baseline tick, then enough wall time to end the reveal.
	now := time.Now()
	m, _ = update(t, m, TickMsg(now))
	for i := 1; i <= 20 && m.game.Session().State() != session.StatePlayable; i++ {
		m, _ = update(t, m, TickMsg(now.Add(time.Duration(i)*200*time.Millisecond)))
	}
	if st := m.game.Session().State(); st != session.StatePlayable {
		t.Fatalf("state = %v, expected Playable", st)
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	records, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	if records[0].Outcome != "abandoned" {
		t.Errorf("Outcome = %q, expected abandoned", records[0].Outcome)
	}
	if records[0].ID != m.game.Session().ID() {
		t.Errorf("ID = %q, expected session id %q", records[0].ID, m.game.Session().ID())
	}
}

func TestModelLeavingDuringRevealRecordsNothing(t *testing.T) {
	store := testStore(t)
	m := newTestModel(store, false)

	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	records, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, expected 0", len(records))
	}
}

func TestSaveResult(t *testing.T) {
	tests := []struct {
		name       string
		outcome    session.Outcome
		wantResult string
		wantReward int
	}{
		{"credited win", session.Outcome{State: session.StateWon, Reward: 150, Stars: 3, Credited: true}, "won", 150},
		{"uncredited win", session.Outcome{State: session.StateWon, Reward: 150, Stars: 2}, "won", 0},
		{"loss", session.Outcome{State: session.StateLost}, "lost", 0},
		{"left mid climb", session.Outcome{State: session.StatePaused, Stars: 1}, "abandoned", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStore(t)
			saveResult(store, log.New(io.Discard), skymemory.Result{
				SessionID: "s-1",
				Level:     2,
				LevelName: "Cloud Maze",
				Outcome:   tt.outcome,
				Coins:     tt.outcome.Reward,
			})

			records, err := store.RecentSessions(1)
			if err != nil || len(records) != 1 {
				t.Fatalf("RecentSessions() = %v, %v", records, err)
			}
			r := records[0]
			if r.Outcome != tt.wantResult {
				t.Errorf("Outcome = %q, expected %q", r.Outcome, tt.wantResult)
			}
			if r.Reward != tt.wantReward {
				t.Errorf("Reward = %d, expected %d", r.Reward, tt.wantReward)
			}
			if r.Stars != tt.outcome.Stars {
				t.Errorf("Stars = %d, expected %d", r.Stars, tt.outcome.Stars)
			}
			if r.Level != 2 || r.LevelName != "Cloud Maze" {
				t.Errorf("level = %d %q, expected 2 Cloud Maze", r.Level, r.LevelName)
			}
		})
	}
}

func TestSaveResultWithoutStore(t *testing.T) {
	// Must not panic.
	saveResult(nil, log.New(io.Discard), skymemory.Result{Outcome: session.Outcome{State: session.StateWon}})
}
