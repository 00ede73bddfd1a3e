package session

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Overlay is a path highlight drawn on top of a tile.
type Overlay struct {
	Cell  Cell
	Alpha float64
}

type revealPhase int

const (
	revealHidden revealPhase = iota
	revealHolding
	revealFading
)

// RevealController shows the path hint, holds it, then fades it out.
// The first hold to finish opens the move gate; replays never touch it.
type RevealController struct {
	sched *Scheduler
	hold  float64
	fade  float64

	path    []Cell
	phase   revealPhase
	alpha   float64
	tween   *gween.Tween
	pending []Handle
	canMove bool
	shows   int

	onGateOpen func(late float64)
	onShown    func()
	onHidden   func()
}

func newRevealController(sched *Scheduler, hold, fade float64) *RevealController {
	return &RevealController{
		sched: sched,
		hold:  hold,
		fade:  fade,
	}
}

// Show puts an overlay on every path tile and starts the hold timer.
// Calling it while a previous show is still running restarts the sequence.
func (r *RevealController) Show(path []Cell) {
	r.cancelPending()
	r.path = path
	r.phase = revealHolding
	r.alpha = 1
	r.tween = nil
	r.shows++
	if r.onShown != nil {
		r.onShown()
	}

	r.pending = append(r.pending, r.sched.After(r.hold, r.endHold))
}

// endHold starts the fade. On the first show it also opens the gate.
func (r *RevealController) endHold(late float64) {
	first := !r.canMove
	r.canMove = true

	if r.fade <= 0 {
		r.endFade(late)
	} else {
		r.phase = revealFading
		r.tween = gween.New(1, 0, float32(r.fade), ease.Linear)
		r.Advance(late)
		r.pending = append(r.pending, r.sched.After(r.fade-late, r.endFade))
	}

	if first && r.onGateOpen != nil {
		r.onGateOpen(late)
	}
}

// endFade removes the overlays.
func (r *RevealController) endFade(float64) {
	r.phase = revealHidden
	r.alpha = 0
	r.tween = nil
	if r.onHidden != nil {
		r.onHidden()
	}
}

// Advance moves the fade forward. Hold and fade deadlines themselves are
// driven by the scheduler.
func (r *RevealController) Advance(dt float64) {
	if r.phase != revealFading || r.tween == nil || dt <= 0 {
		return
	}
	cur, _ := r.tween.Update(float32(dt))
	r.alpha = clamp01(float64(cur))
}

// Stop drops the overlays and any pending deadlines without firing them.
func (r *RevealController) Stop() {
	r.cancelPending()
	r.phase = revealHidden
	r.alpha = 0
	r.tween = nil
}

// CanMove reports whether the initial hold has ended.
func (r *RevealController) CanMove() bool {
	return r.canMove
}

// Visible reports whether overlays are currently shown.
func (r *RevealController) Visible() bool {
	return r.phase != revealHidden
}

// Shows returns how many times the hint has been shown.
func (r *RevealController) Shows() int {
	return r.shows
}

// Overlays returns the current highlights, or nil when hidden.
func (r *RevealController) Overlays() []Overlay {
	if r.phase == revealHidden {
		return nil
	}
	out := make([]Overlay, len(r.path))
	for i, c := range r.path {
		out[i] = Overlay{Cell: c, Alpha: r.alpha}
	}
	return out
}

func (r *RevealController) cancelPending() {
	for _, h := range r.pending {
		r.sched.Cancel(h)
	}
	r.pending = r.pending[:0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
