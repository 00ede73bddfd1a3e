// Package session implements the Sky Memory play-session engine: grid and
// path generation, the reveal-then-play state machine, row oscillation,
// the climbing hazard, tap resolution on a moving surface, and scoring.
//
// A Session runs on a single logical timeline. The host feeds it Tick,
// Tap and the pause/resume/restart signals from one goroutine; the session
// never blocks and never locks.
package session

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/sky-memory/internal/core"
)

// LaunchRow is the OwnerRow of a token that has not made a move yet.
// The launch pad sits one tile below row 0 and does not oscillate.
const LaunchRow = -1

// Token is the player's plane. OwnerRow is the row container that carries
// it; moving the token reassigns ownership so it inherits that row's
// oscillation.
type Token struct {
	OwnerRow int
	Col      int
	SpriteID string
}

// MoveResult is the outcome of a tap.
type MoveResult int

const (
	MoveIgnored MoveResult = iota
	MoveCorrect
	MoveWrong
)

func (m MoveResult) String() string {
	switch m {
	case MoveCorrect:
		return "correct"
	case MoveWrong:
		return "wrong"
	default:
		return "ignored"
	}
}

// Outcome is filled in when the session reaches a terminal state.
type Outcome struct {
	State     State
	Reward    int
	Stars     int
	Credited  bool
	CreditErr error
	Elapsed   float64
}

// Option configures a Session.
type Option func(*Session)

// WithWallet sets the wallet credited on a win.
func WithWallet(w Wallet) Option {
	return func(s *Session) { s.wallet = w }
}

// WithSkins sets the provider of the token sprite.
func WithSkins(p SkinProvider) Option {
	return func(s *Session) { s.skins = p }
}

// WithNotifier sets the render/notify hook.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notify = n }
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is one play attempt at a level, restartable in place.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	log    *log.Logger
	wallet Wallet
	skins  SkinProvider
	notify Notifier

	id         string
	state      State
	pausedFrom State
	baseline   bool

	sched    *Scheduler
	grid     *Grid
	path     []Cell
	index    int
	token    Token
	rows     *RowAnimator
	hazard   HazardTimer
	reveal   *RevealController
	score    ScoreModel
	resolver InputResolver
	outcome  Outcome
	settled  bool
}

// New validates cfg and sets up the first attempt. The returned session
// is in the Reveal state.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		log:   log.New(io.Discard),
		sched: NewScheduler(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setup()
	return s, nil
}

// setup builds a fresh grid, path, token and hazard and starts the reveal.
func (s *Session) setup() {
	s.setState(StateSetup)
	s.sched.Reset()

	lvl := s.cfg.Level
	s.grid = NewGrid(s.cfg.ViewW, s.cfg.ViewH, s.cfg.Layout, lvl.Rows, lvl.Columns, s.rng)
	s.path = GeneratePath(s.rng, lvl.Rows, lvl.Columns)
	s.index = 0
	s.resolver = InputResolver{grid: s.grid}
	s.rows = newRowAnimator(s.grid, s.cfg.Timing.Leg)

	sprite := DefaultSpriteID
	if s.skins != nil {
		if id := s.skins.CurrentTokenSpriteID(); id != "" {
			sprite = id
		}
	}
	s.token = Token{OwnerRow: LaunchRow, Col: s.path[0].Col, SpriteID: sprite}

	tile := s.grid.TileSize
	s.hazard = HazardTimer{
		Position:     s.grid.StartY - s.cfg.Hazard.StartBelow*tile,
		Speed:        lvl.HazardSpeed * tile,
		Acceleration: lvl.HazardAcceleration * tile,
		jump:         s.cfg.Rules.MistakeJump * tile,
		factor:       s.cfg.Rules.MistakeSpeedFactor,
	}

	s.score = newScoreModel(s.cfg.Rules.Lives, lvl.Stake, s.cfg.Rules.Penalty)
	s.outcome = Outcome{}
	s.settled = false
	s.id = uuid.NewString()

	s.reveal = newRevealController(s.sched, s.cfg.Timing.Reveal, s.cfg.Timing.Fade)
	s.reveal.onGateOpen = s.openGate
	s.reveal.onShown = func() { s.emit(Event{Kind: EventRevealShown}) }
	s.reveal.onHidden = func() { s.emit(Event{Kind: EventRevealHidden}) }

	s.baseline = true
	s.setState(StateReveal)
	s.reveal.Show(s.path)

	s.log.Debug("session ready", "id", s.id, "level", lvl.Name,
		"grid", lvl.Columns, "rows", lvl.Rows, "tile", tile)
}

// openGate runs when the first hold ends: input opens and rows start.
// late is the part of the current tick that fell after the deadline.
func (s *Session) openGate(late float64) {
	if s.state != StateReveal {
		return
	}
	s.setState(StatePlayable)
	s.rows.Start()
	s.rows.Advance(late)
	s.hazard.Advance(late)
	s.checkCatch()
}

// Tick advances the session by dt seconds. The first tick after setup or
// Restart only establishes a baseline. Ticks outside Reveal and Playable
// contribute nothing.
func (s *Session) Tick(dt float64) {
	if s.baseline {
		s.baseline = false
		return
	}
	if dt <= 0 || !core.Finite(dt) {
		return
	}
	if s.state != StateReveal && s.state != StatePlayable {
		return
	}

	if s.state == StatePlayable {
		s.rows.Advance(dt)
		s.hazard.Advance(dt)
		if s.checkCatch() {
			return
		}
	}
	s.reveal.Advance(dt)
	s.sched.Advance(dt)
}

// Tap resolves a tap at scene point (x, y) against the next expected cell.
// Taps outside the grid or outside Playable are ignored.
func (s *Session) Tap(x, y float64) MoveResult {
	if s.state != StatePlayable || !s.reveal.CanMove() {
		return MoveIgnored
	}
	cell, ok := s.resolver.Resolve(x, y)
	if !ok || s.index >= len(s.path) {
		return MoveIgnored
	}

	if cell == s.path[s.index] {
		s.index++
		s.token.OwnerRow = cell.Row
		s.token.Col = cell.Col
		s.emit(Event{Kind: EventTokenMoved, Cell: cell})
		if s.index == len(s.path) {
			s.finish(StateWon)
		}
		return MoveCorrect
	}

	lives := s.score.Mistake()
	s.hazard.Penalize()
	s.emit(Event{Kind: EventMistake, Cell: cell, Lives: lives})
	s.log.Debug("mistake", "id", s.id, "cell", cell, "lives", lives, "coins", s.score.LevelCoins)

	switch {
	case lives == 0:
		s.finish(StateLost)
	case s.checkCatch():
	default:
		s.emit(Event{Kind: EventShake, Lives: lives})
	}
	return MoveWrong
}

// Pause freezes the session. Only Reveal and Playable can be paused.
func (s *Session) Pause() bool {
	if s.state != StateReveal && s.state != StatePlayable {
		return false
	}
	s.pausedFrom = s.state
	s.setState(StatePaused)
	return true
}

// Resume returns to the state the session was paused from. The next Tick
// should carry only the time since resuming.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.setState(s.pausedFrom)
	return true
}

// Restart cancels every pending action and animation and sets up a new
// attempt with a new grid and path. Allowed from any state.
func (s *Session) Restart() {
	s.sched.CancelAll()
	s.rows.Stop()
	s.reveal.Stop()
	s.setup()
}

// Repeat replays the path hint. It changes no game state and is only
// available while Playable.
func (s *Session) Repeat() bool {
	if s.state != StatePlayable {
		return false
	}
	s.reveal.Show(s.path)
	return true
}

// checkCatch ends the session if the hazard reached the catch line.
func (s *Session) checkCatch() bool {
	if s.state != StatePlayable || !s.hazard.Reached(s.CatchLine()) {
		return false
	}
	s.log.Debug("caught", "id", s.id, "hazard", s.hazard.Position, "line", s.CatchLine())
	s.finish(StateLost)
	return true
}

// finish enters a terminal state, freezes everything and settles the
// reward. The wallet is credited only on Won.
func (s *Session) finish(to State) {
	if s.state.Terminal() {
		return
	}
	s.rows.Stop()
	s.sched.CancelAll()
	s.reveal.Stop()
	s.setState(to)

	if s.settled {
		return
	}
	s.settled = true

	s.outcome = Outcome{State: to, Stars: s.score.Stars, Elapsed: s.sched.Now()}
	if to != StateWon {
		return
	}
	s.outcome.Reward = s.score.LevelCoins
	if s.wallet == nil {
		return
	}
	if err := s.wallet.Credit(s.outcome.Reward); err != nil {
		s.outcome.CreditErr = err
		s.log.Error("wallet credit failed", "id", s.id, "amount", s.outcome.Reward, "err", err)
		return
	}
	s.outcome.Credited = true
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	if from != to {
		s.log.Debug("state", "id", s.id, "from", from, "to", to)
	}
	s.emit(Event{Kind: EventStateChanged, From: from, To: to})
}

func (s *Session) emit(e Event) {
	if s.notify != nil {
		s.notify(e)
	}
}
