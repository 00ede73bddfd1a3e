package session

import (
	"math"
	"math/rand"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestRowAnimatorLegs(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 2, 5, rand.New(rand.NewSource(1)))
	tile := g.TileSize
	rows := newRowAnimator(g, 4.0)
	rows.Start()

	steps := []struct {
		dt        float64
		even, odd float64
	}{
		{2.0, tile / 2, -tile / 2},
		{2.0, tile, -tile},
		{1.0, tile * 0.75, -tile * 0.75},
		{3.0, 0, 0},
		{4.0, tile, -tile},
	}

	for i, st := range steps {
		rows.Advance(st.dt)
		if !approx(rows.Offset(0), st.even) {
			t.Errorf("step %d: even offset = %v, expected %v", i, rows.Offset(0), st.even)
		}
		if !approx(rows.Offset(1), st.odd) {
			t.Errorf("step %d: odd offset = %v, expected %v", i, rows.Offset(1), st.odd)
		}
	}
}

func TestRowAnimatorCarriesOverflow(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 1, 5, rand.New(rand.NewSource(1)))
	rows := newRowAnimator(g, 4.0)
	rows.Start()

	rows.Advance(5.0)
	if !approx(rows.Offset(0), g.TileSize*0.75) {
		t.Errorf("offset after 5s = %v, expected %v", rows.Offset(0), g.TileSize*0.75)
	}

	rows.Advance(11.0) // 16s total: two full cycles
	if !approx(rows.Offset(0), 0) {
		t.Errorf("offset after 16s = %v, expected 0", rows.Offset(0))
	}
}

func TestRowAnimatorStopFreezes(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 1, 5, rand.New(rand.NewSource(1)))
	rows := newRowAnimator(g, 4.0)

	rows.Advance(1.0)
	if rows.Offset(0) != 0 {
		t.Errorf("offset before Start = %v, expected 0", rows.Offset(0))
	}

	rows.Start()
	rows.Advance(1.0)
	frozen := rows.Offset(0)
	rows.Stop()
	rows.Advance(1.0)

	if rows.Running() {
		t.Error("Running() = true after Stop")
	}
	if rows.Offset(0) != frozen {
		t.Errorf("offset after Stop = %v, expected %v", rows.Offset(0), frozen)
	}
}
