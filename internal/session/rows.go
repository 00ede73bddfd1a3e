package session

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// rowMotion is the oscillation state of one row: the current leg's tween
// and how much of the leg has elapsed.
type rowMotion struct {
	tween     *gween.Tween
	elapsed   float64
	outbound  bool
	amplitude float64
}

// RowAnimator drives the endless oscillation of every row. Even rows swing
// right by one tile and back, odd rows swing left. Offsets are written to
// the grid, which stays the single source of truth for hit testing.
type RowAnimator struct {
	grid    *Grid
	leg     float64
	motions []rowMotion
	running bool
}

func newRowAnimator(grid *Grid, leg float64) *RowAnimator {
	return &RowAnimator{grid: grid, leg: leg}
}

// Start begins oscillation from rest. It is a no-op if already running.
func (a *RowAnimator) Start() {
	if a.running || a.leg <= 0 {
		return
	}
	a.motions = make([]rowMotion, a.grid.Rows)
	for r := range a.motions {
		amp := a.grid.TileSize
		if r%2 == 1 {
			amp = -amp
		}
		a.grid.setOffset(r, 0)
		a.motions[r] = rowMotion{
			tween:     gween.New(0, float32(amp), float32(a.leg), ease.Linear),
			outbound:  true,
			amplitude: amp,
		}
	}
	a.running = true
}

// Advance moves every row forward by dt. Time left over at the end of a
// leg carries into the next leg.
func (a *RowAnimator) Advance(dt float64) {
	if !a.running || dt <= 0 {
		return
	}
	for r := range a.motions {
		a.advanceRow(r, dt)
	}
}

func (a *RowAnimator) advanceRow(r int, dt float64) {
	m := &a.motions[r]
	for dt > 0 {
		step, ended := dt, false
		if remaining := a.leg - m.elapsed; step >= remaining {
			step, ended = remaining, true
		}
		cur, _ := m.tween.Update(float32(step))
		m.elapsed += step
		dt -= step
		a.grid.setOffset(r, float64(cur))
		if !ended {
			continue
		}

		// Snap to the leg end and turn around.
		from, to := m.amplitude, 0.0
		if !m.outbound {
			from, to = 0.0, m.amplitude
		}
		a.grid.setOffset(r, from)
		m.outbound = !m.outbound
		m.elapsed = 0
		m.tween = gween.New(float32(from), float32(to), float32(a.leg), ease.Linear)
	}
}

// Stop ends the oscillation and leaves every row where it is.
func (a *RowAnimator) Stop() {
	a.running = false
	a.motions = nil
}

// Running reports whether rows are oscillating.
func (a *RowAnimator) Running() bool {
	return a.running
}

// Offset returns the live offset of row r.
func (a *RowAnimator) Offset(r int) float64 {
	return a.grid.Offset(r)
}
