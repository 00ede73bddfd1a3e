package session

// Handle identifies a scheduled action. A handle from an earlier
// generation is never honoured.
type Handle struct {
	id  uint64
	gen uint64
}

type scheduled struct {
	id       uint64
	gen      uint64
	deadline float64
	fn       func(late float64)
}

// Scheduler runs actions against accumulated session time instead of wall
// clock waits. Time only moves through Advance, so a paused session simply
// stops calling it. CancelAll bumps the generation: nothing scheduled before
// the call can fire afterwards, even if a callback still holds its handle.
type Scheduler struct {
	now     float64
	gen     uint64
	nextID  uint64
	pending []scheduled
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of live scheduled actions.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After schedules fn to run once delay has elapsed. fn receives how far
// past its deadline the triggering Advance went.
func (s *Scheduler) After(delay float64, fn func(late float64)) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	entry := scheduled{
		id:       s.nextID,
		gen:      s.gen,
		deadline: s.now + delay,
		fn:       fn,
	}
	s.pending = append(s.pending, entry)
	return Handle{id: entry.id, gen: entry.gen}
}

// Cancel removes a pending action. Returns false if it already ran, was
// cancelled, or belongs to an older generation.
func (s *Scheduler) Cancel(h Handle) bool {
	if h.gen != s.gen {
		return false
	}
	for i, e := range s.pending {
		if e.id == h.id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll invalidates every pending action.
func (s *Scheduler) CancelAll() {
	s.gen++
	s.pending = s.pending[:0]
}

// Reset cancels everything and rewinds time to zero.
func (s *Scheduler) Reset() {
	s.CancelAll()
	s.now = 0
}

// Advance moves time forward by dt and runs every due action in deadline
// order (ties in scheduling order). Actions scheduled by a callback run in
// the same call if they are already due. Returns the number of actions run.
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for {
		idx := s.nextDue()
		if idx < 0 {
			return ran
		}
		e := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		if e.gen != s.gen {
			continue
		}
		e.fn(s.now - e.deadline)
		ran++
	}
}

// nextDue returns the index of the earliest due action, or -1.
func (s *Scheduler) nextDue() int {
	best := -1
	for i, e := range s.pending {
		if e.deadline > s.now {
			continue
		}
		if best < 0 || e.deadline < s.pending[best].deadline ||
			(e.deadline == s.pending[best].deadline && e.id < s.pending[best].id) {
			best = i
		}
	}
	return best
}
