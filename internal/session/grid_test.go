package session

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sky-memory/internal/config"
)

var testLayout = config.Layout{WidthFraction: 0.9, HeightFraction: 0.8}

func TestNewGridGeometry(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		rows, cols   int
		expectedTile float64
	}{
		{"width bound", 100, 100, 7, 10, 9},
		{"height bound", 200, 50, 4, 5, 10},
		{"square", 100, 100, 5, 5, 16},
		{"degenerate", 0, 0, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.w, tt.h, testLayout, tt.rows, tt.cols, rand.New(rand.NewSource(1)))

			if math.Abs(g.TileSize-tt.expectedTile) > 1e-9 {
				t.Errorf("TileSize = %v, expected %v", g.TileSize, tt.expectedTile)
			}
			if got := g.StartX*2 + g.Width(); math.Abs(got-tt.w) > 1e-9 {
				t.Errorf("grid not centred horizontally: 2*StartX+Width = %v, expected %v", got, tt.w)
			}
			if got := g.StartY*2 + g.Height(); math.Abs(got-tt.h) > 1e-9 {
				t.Errorf("grid not centred vertically: 2*StartY+Height = %v, expected %v", got, tt.h)
			}
		})
	}
}

func TestNewGridTiles(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 4, 6, rand.New(rand.NewSource(7)))

	palette := map[string]bool{}
	for _, id := range TilePalette {
		palette[id] = true
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			id := g.TileID(Cell{Row: r, Col: c})
			if !palette[id] {
				t.Errorf("tile (%d,%d) = %q, not in palette", r, c, id)
			}
		}
		if g.Offset(r) != 0 {
			t.Errorf("row %d offset = %v, expected 0", r, g.Offset(r))
		}
	}

	if id := g.TileID(Cell{Row: 4, Col: 0}); id != "" {
		t.Errorf("TileID out of bounds = %q, expected empty", id)
	}
}

func TestTileRectFollowsOffset(t *testing.T) {
	g := NewGrid(100, 100, testLayout, 3, 3, rand.New(rand.NewSource(1)))
	before := g.TileRect(Cell{Row: 1, Col: 2})

	g.setOffset(1, -4)
	after := g.TileRect(Cell{Row: 1, Col: 2})

	if math.Abs(after.X-(before.X-4)) > 1e-9 {
		t.Errorf("TileRect.X = %v, expected %v", after.X, before.X-4)
	}
	if after.Y != before.Y {
		t.Errorf("TileRect.Y = %v, expected %v", after.Y, before.Y)
	}
}
