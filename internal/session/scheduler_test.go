package session

import "testing"

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(2, func(float64) { order = append(order, "b") })
	s.After(1, func(float64) { order = append(order, "a") })
	s.After(2, func(float64) { order = append(order, "c") })

	if n := s.Advance(0.5); n != 0 {
		t.Errorf("Advance(0.5) ran %d actions, expected 0", n)
	}
	if n := s.Advance(2); n != 3 {
		t.Errorf("Advance(2) ran %d actions, expected 3", n)
	}

	expected := []string{"a", "b", "c"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %s, expected %s", i, order[i], expected[i])
		}
	}
}

func TestSchedulerLate(t *testing.T) {
	s := NewScheduler()
	var late float64
	s.After(1, func(l float64) { late = l })
	s.Advance(1.25)

	if late != 0.25 {
		t.Errorf("late = %v, expected 0.25", late)
	}
}

func TestSchedulerChained(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(1, func(late float64) {
		s.After(1-late, func(float64) { fired++ })
	})

	s.Advance(2.5)
	if fired != 1 {
		t.Errorf("chained action fired %d times, expected 1", fired)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.After(1, func(float64) { fired = true })

	if !s.Cancel(h) {
		t.Error("Cancel() = false for a pending action")
	}
	if s.Cancel(h) {
		t.Error("Cancel() = true for an already cancelled action")
	}
	s.Advance(5)
	if fired {
		t.Error("cancelled action fired")
	}
}

func TestSchedulerCancelAllInvalidatesHandles(t *testing.T) {
	s := NewScheduler()
	fired := 0
	old := s.After(1, func(float64) { fired++ })

	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll, expected 0", s.Pending())
	}
	if s.Cancel(old) {
		t.Error("Cancel() accepted a handle from an older generation")
	}

	s.After(1, func(float64) { fired++ })
	s.Advance(1)
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	s.Advance(3)
	s.After(1, func(float64) {})
	s.Reset()

	if s.Now() != 0 {
		t.Errorf("Now() = %v after Reset, expected 0", s.Now())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after Reset, expected 0", s.Pending())
	}
}
