package session

import "github.com/vovakirdan/sky-memory/internal/core"

// tokenScale is the token size relative to a tile.
const tokenScale = 0.5

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	ID         string
	Level      string
	State      State
	Lives      int
	MaxLives   int
	Stars      int
	LevelCoins int
	Index      int
	PathLen    int
	Token      Token
	TokenRect  core.Rect
	Hazard     float64 // Top of the hazard, scene Y
	CatchLine  float64
	Overlays   []Overlay
	Elapsed    float64
	CanMove    bool
}

// ID returns the unique id of the current attempt.
func (s *Session) ID() string {
	return s.id
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.score.Lives
}

// Stars returns the current star rating.
func (s *Session) Stars() int {
	return s.score.Stars
}

// LevelCoins returns the coins still at stake.
func (s *Session) LevelCoins() int {
	return s.score.LevelCoins
}

// Index returns the progress cursor into the path.
func (s *Session) Index() int {
	return s.index
}

// Grid returns the live grid.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Token returns the player token.
func (s *Session) Token() Token {
	return s.token
}

// Outcome returns the settled result. It is zero until a terminal state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Path returns a copy of the correct path.
func (s *Session) Path() []Cell {
	out := make([]Cell, len(s.path))
	copy(out, s.path)
	return out
}

// Hazard returns a copy of the hazard state.
func (s *Session) Hazard() HazardTimer {
	return s.hazard
}

// Elapsed returns the unpaused play time of the current attempt.
func (s *Session) Elapsed() float64 {
	return s.sched.Now()
}

// Overlays returns the path highlights currently shown.
func (s *Session) Overlays() []Overlay {
	return s.reveal.Overlays()
}

// TileAt resolves a scene point the same way a tap is resolved, in any
// state.
func (s *Session) TileAt(x, y float64) (Cell, bool) {
	return s.resolver.Resolve(x, y)
}

// TokenRect returns the token's scene rectangle. A token owned by a row
// moves with that row's live offset.
func (s *Session) TokenRect() core.Rect {
	g := s.grid
	size := g.TileSize * tokenScale

	var tile core.Rect
	if s.token.OwnerRow == LaunchRow {
		tile = core.NewRect(g.StartX+float64(s.token.Col)*g.TileSize, g.StartY-g.TileSize, g.TileSize, g.TileSize)
	} else {
		tile = g.TileRect(Cell{Row: s.token.OwnerRow, Col: s.token.Col})
	}
	c := tile.Center()
	return core.NewRect(c.X-size/2, c.Y-size/2, size, size)
}

// CatchLine returns the scene Y the hazard must reach to catch the token:
// a margin below the token centre, in token heights.
func (s *Session) CatchLine() float64 {
	r := s.TokenRect()
	return r.Center().Y - s.cfg.Rules.CatchMargin*r.H
}

// Snapshot captures the current session for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:         s.id,
		Level:      s.cfg.Level.Name,
		State:      s.state,
		Lives:      s.score.Lives,
		MaxLives:   s.cfg.Rules.Lives,
		Stars:      s.score.Stars,
		LevelCoins: s.score.LevelCoins,
		Index:      s.index,
		PathLen:    len(s.path),
		Token:      s.token,
		TokenRect:  s.TokenRect(),
		Hazard:     s.hazard.Position,
		CatchLine:  s.CatchLine(),
		Overlays:   s.reveal.Overlays(),
		Elapsed:    s.sched.Now(),
		CanMove:    s.reveal.CanMove(),
	}
}
