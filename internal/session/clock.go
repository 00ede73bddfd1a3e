package session

import "time"

// FrameClock turns wall-clock frame timestamps into tick durations.
// The first frame after Reset yields zero, and long gaps are clamped so a
// stalled terminal cannot replay a backlog of time.
type FrameClock struct {
	last   time.Time
	maxDt  time.Duration
	primed bool
}

// DefaultMaxFrame is the longest gap a single frame may report.
const DefaultMaxFrame = 250 * time.Millisecond

// NewFrameClock creates a clock that clamps frames to maxDt.
// A non-positive maxDt selects DefaultMaxFrame.
func NewFrameClock(maxDt time.Duration) *FrameClock {
	if maxDt <= 0 {
		maxDt = DefaultMaxFrame
	}
	return &FrameClock{maxDt: maxDt}
}

// Reset forgets the last frame. Call it on resume and restart.
func (c *FrameClock) Reset() {
	c.primed = false
}

// Delta returns the seconds since the previous frame.
func (c *FrameClock) Delta(now time.Time) float64 {
	if !c.primed {
		c.primed = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if d > c.maxDt {
		d = c.maxDt
	}
	return d.Seconds()
}
