package session

import (
	"math"
	"math/rand"
	"testing"
)

func TestResolveStatic(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 7, 10, rand.New(rand.NewSource(1)))
	res := InputResolver{grid: g}

	tests := []struct {
		name   string
		x, y   float64
		cell   Cell
		expect bool
	}{
		{"bottom left", g.StartX + 0.1, g.StartY + 0.1, Cell{0, 0}, true},
		{"top right", g.StartX + g.Width() - 0.1, g.StartY + g.Height() - 0.1, Cell{6, 9}, true},
		{"band top edge is exclusive", g.StartX + 1, g.StartY + g.TileSize, Cell{1, 0}, true},
		{"below grid", g.StartX + 1, g.StartY - 0.1, Cell{}, false},
		{"above grid", g.StartX + 1, g.StartY + g.Height(), Cell{}, false},
		{"left of grid", g.StartX - 0.1, g.StartY + 1, Cell{}, false},
		{"right of grid", g.StartX + g.Width(), g.StartY + 1, Cell{}, false},
		{"NaN", math.NaN(), g.StartY + 1, Cell{}, false},
		{"Inf", g.StartX + 1, math.Inf(1), Cell{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, ok := res.Resolve(tt.x, tt.y)
			if ok != tt.expect {
				t.Fatalf("Resolve ok = %v, expected %v", ok, tt.expect)
			}
			if ok && cell != tt.cell {
				t.Errorf("Resolve = %v, expected %v", cell, tt.cell)
			}
		})
	}
}

func TestResolveZeroTile(t *testing.T) {
	g := NewGrid(0, 0, testLayout, 3, 3, rand.New(rand.NewSource(1)))
	if _, ok := (InputResolver{grid: g}).Resolve(0, 0); ok {
		t.Error("Resolve on a zero-size grid matched, expected no match")
	}
	if _, ok := (InputResolver{}).Resolve(0, 0); ok {
		t.Error("Resolve without a grid matched, expected no match")
	}
}

// Tapping the centre of a tile must hit that tile at every point of the
// oscillation cycle, including negative offsets.
func TestResolveUnderOscillation(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 7, 10, rand.New(rand.NewSource(1)))
	res := InputResolver{grid: g}
	rows := newRowAnimator(g, 4.0)
	rows.Start()

	sawNegative, sawPositive := false, false
	for step := 0; step <= 170; step++ {
		if step > 0 {
			rows.Advance(0.1)
		}
		for r := 0; r < g.Rows; r++ {
			o := g.Offset(r)
			if o < 0 {
				sawNegative = true
			}
			if o > 0 {
				sawPositive = true
			}
			for c := 0; c < g.Columns; c++ {
				x := g.StartX + float64(c)*g.TileSize + o + g.TileSize/2
				y := g.StartY + float64(r)*g.TileSize + g.TileSize/2

				cell, ok := res.Resolve(x, y)
				if !ok || cell != (Cell{Row: r, Col: c}) {
					t.Fatalf("t=%.1f offset %v: Resolve(%v,%v) = %v,%v, expected (%d,%d)",
						float64(step)*0.1, o, x, y, cell, ok, r, c)
				}
			}
		}
	}

	if !sawNegative || !sawPositive {
		t.Errorf("cycle did not cover both directions: negative=%v positive=%v", sawNegative, sawPositive)
	}
}

// The same physical point maps to different columns as the row moves.
func TestResolveUsesLiveOffset(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 2, 5, rand.New(rand.NewSource(1)))
	res := InputResolver{grid: g}

	x := g.StartX + 2*g.TileSize + g.TileSize/2
	y := g.StartY + g.TileSize/2

	cell, _ := res.Resolve(x, y)
	if cell.Col != 2 {
		t.Fatalf("Resolve at rest = %v, expected column 2", cell)
	}

	g.setOffset(0, g.TileSize)
	cell, _ = res.Resolve(x, y)
	if cell.Col != 1 {
		t.Errorf("Resolve with +tile offset = %v, expected column 1", cell)
	}

	g.setOffset(0, -g.TileSize)
	cell, _ = res.Resolve(x, y)
	if cell.Col != 3 {
		t.Errorf("Resolve with -tile offset = %v, expected column 3", cell)
	}
}
