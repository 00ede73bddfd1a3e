// Package skymemory hosts a Sky Memory play session in the terminal.
// It translates screen cells and actions into session calls and draws the
// session into a core.Screen. All game rules live in internal/session.
package skymemory

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
	"github.com/vovakirdan/sky-memory/internal/session"
)

const (
	gameID    = "skymemory"
	gameTitle = "Sky Memory"

	shakeDuration = 0.3 // Seconds of board jitter after a mistake
)

// Result describes a finished attempt.
type Result struct {
	SessionID string
	Level     int
	LevelName string
	Outcome   session.Outcome
	Coins     int // Coins left at stake
}

// Options wires the game to its collaborators. Every field is optional.
type Options struct {
	Config config.Config
	Level  int // 0-based campaign index

	// Wallet returns the wallet to credit for a level.
	Wallet func(lvl config.Level) session.Wallet
	Skins  session.SkinProvider
	Logger *log.Logger

	// OnFinish is called once per attempt that reaches Won or Lost.
	OnFinish func(Result)
}

// Game adapts a session to the host's Reset/Step/Render loop.
type Game struct {
	opts  Options
	level int
	rt    core.RuntimeConfig
	view  viewport
	sess  *session.Session
	err   error

	cursor   int     // Aim column for keyboard play
	shake    float64 // Remaining shake time
	frame    int
	reported string // Session id already passed to OnFinish
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	if len(opts.Config.Levels) == 0 {
		opts.Config = config.Default()
	}
	return &Game{opts: opts, level: opts.Level}
}

// ID returns the game identifier used for logs and storage.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset builds a fresh session for the current level sized to the screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.view = newViewport(rt.ScreenW, rt.ScreenH)
	g.start()
}

// start creates the session for g.level.
func (g *Game) start() {
	w, h := g.view.sceneSize()
	cfg, err := session.ConfigFor(g.opts.Config, g.level, w, h, g.rt.Seed+int64(g.level))
	if err == nil {
		var opts []session.Option
		if g.opts.Wallet != nil {
			opts = append(opts, session.WithWallet(g.opts.Wallet(cfg.Level)))
		}
		if g.opts.Skins != nil {
			opts = append(opts, session.WithSkins(g.opts.Skins))
		}
		if g.opts.Logger != nil {
			opts = append(opts, session.WithLogger(g.opts.Logger))
		}
		opts = append(opts, session.WithNotifier(g.onEvent))
		g.sess, err = session.New(cfg, opts...)
	}

	g.err = err
	if err != nil {
		g.sess = nil
		if g.opts.Logger != nil {
			g.opts.Logger.Error("cannot start level", "level", g.level+1, "err", err)
		}
		return
	}
	g.cursor = g.sess.Path()[0].Col
	g.shake = 0
}

// onEvent receives session notifications.
func (g *Game) onEvent(e session.Event) {
	switch e.Kind {
	case session.EventShake:
		g.shake = shakeDuration
	case session.EventStateChanged:
		if e.To.Terminal() {
			g.shake = 0
		}
	}
}

// Step applies one frame of input and advances the session by in.Dt.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sess == nil {
		return core.StepResult{State: g.State()}
	}
	s := g.sess

	if in.Has(core.ActionRestart) {
		s.Restart()
		g.cursor = s.Path()[0].Col
		g.shake = 0
	}
	if in.Has(core.ActionNext) && s.State() == session.StateWon && g.HasNextLevel() {
		g.level++
		g.start()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		if s.State() == session.StatePaused {
			s.Resume()
		} else {
			s.Pause()
		}
	}
	if in.Has(core.ActionRepeat) {
		s.Repeat()
	}
	if in.Has(core.ActionLeft) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionRight) && g.cursor < s.Grid().Columns-1 {
		g.cursor++
	}
	if in.Has(core.ActionConfirm) {
		p := g.aimPoint()
		s.Tap(p.X, p.Y)
	}
	// Taps were aimed at the last rendered frame, shake included.
	shake := g.shakeOffset()
	for _, tap := range in.Taps {
		p := g.view.toScene(tap.X-shake, tap.Y)
		s.Tap(p.X, p.Y)
	}

	s.Tick(in.Dt)
	if g.shake > 0 {
		g.shake -= in.Dt
	}
	g.frame++

	g.report()
	return core.StepResult{State: g.State()}
}

// aimPoint is the scene point under the keyboard cursor: the rest
// position of the cursor column in the next row to climb.
func (g *Game) aimPoint() core.Point {
	grid := g.sess.Grid()
	row := g.sess.Index()
	if row >= grid.Rows {
		row = grid.Rows - 1
	}
	return core.Pt(
		grid.StartX+(float64(g.cursor)+0.5)*grid.TileSize,
		grid.StartY+(float64(row)+0.5)*grid.TileSize,
	)
}

// report hands a finished attempt to OnFinish exactly once.
func (g *Game) report() {
	s := g.sess
	if !s.State().Terminal() || g.reported == s.ID() {
		return
	}
	g.reported = s.ID()
	if g.opts.OnFinish == nil {
		return
	}
	lvl := s.Config().Level
	g.opts.OnFinish(Result{
		SessionID: s.ID(),
		Level:     g.level,
		LevelName: lvl.Name,
		Outcome:   s.Outcome(),
		Coins:     s.LevelCoins(),
	})
}

// State returns the host-facing game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{GameOver: true}
	}
	st := g.sess.State()
	return core.GameState{
		Score:    g.sess.LevelCoins(),
		GameOver: st.Terminal(),
		Won:      st == session.StateWon,
		Paused:   st == session.StatePaused,
	}
}

// Session returns the running session, or nil if the level failed to
// start.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Level returns the current 0-based level index.
func (g *Game) Level() int {
	return g.level
}

// HasNextLevel reports whether the campaign continues after this level.
func (g *Game) HasNextLevel() bool {
	return g.level+1 < g.opts.Config.LevelCount()
}

// Err returns the error that prevented the level from starting.
func (g *Game) Err() error {
	return g.err
}

// levelLabel is the HUD title of the current level.
func (g *Game) levelLabel() string {
	name := ""
	if lvl, ok := g.opts.Config.Level(g.level); ok {
		name = lvl.Name
	}
	return fmt.Sprintf("Level %d: %s", g.level+1, name)
}

// Pending returns the attempt in progress if the player has started
// climbing and it has not finished yet. Hosts record it as abandoned
// when the player leaves.
func (g *Game) Pending() (Result, bool) {
	s := g.sess
	if s == nil || g.reported == s.ID() {
		return Result{}, false
	}
	if st := s.State(); st != session.StatePlayable && st != session.StatePaused {
		return Result{}, false
	}
	g.reported = s.ID()
	return Result{
		SessionID: s.ID(),
		Level:     g.level,
		LevelName: s.Config().Level.Name,
		Outcome:   session.Outcome{State: s.State(), Stars: s.Stars(), Elapsed: s.Elapsed()},
		Coins:     s.LevelCoins(),
	}, true
}
