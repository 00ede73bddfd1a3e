package session

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sky-memory/internal/config"
	"github.com/vovakirdan/sky-memory/internal/core"
)

// TilePalette lists the cosmetic tile ids. Tiles are purely visual.
var TilePalette = []string{"red", "orange", "yellow", "green", "cyan", "blue", "pink"}

// Cell is a logical grid position.
type Cell struct {
	Row int
	Col int
}

// Row is one animated row container. Tiles never move independently of
// their row: a tile's scene X is StartX + Offset + col*TileSize.
type Row struct {
	BaseY  float64  // Fixed bottom edge of the row band
	Offset float64  // Live horizontal oscillation offset
	Tiles  []string // Cosmetic tile ids, one per column
}

// Grid holds the tile geometry and the row containers.
// TileSize, StartX and StartY are fixed once the grid is built.
type Grid struct {
	Rows     int
	Columns  int
	TileSize float64
	StartX   float64 // Left edge of column 0 at zero offset
	StartY   float64 // Bottom edge of row 0

	rows []Row
}

// NewGrid lays out a rows x cols grid centred in a viewW x viewH viewport.
// The tile size is the largest square that fits the layout fractions of
// the viewport. A degenerate viewport yields a zero tile size.
func NewGrid(viewW, viewH float64, layout config.Layout, rows, cols int, rng *rand.Rand) *Grid {
	availW := viewW * layout.WidthFraction
	availH := viewH * layout.HeightFraction

	tile := math.Min(availW/float64(cols), availH/float64(rows))
	if tile < 0 || !core.Finite(tile) {
		tile = 0
	}

	g := &Grid{
		Rows:     rows,
		Columns:  cols,
		TileSize: tile,
		StartX:   (viewW - tile*float64(cols)) / 2,
		StartY:   (viewH - tile*float64(rows)) / 2,
		rows:     make([]Row, rows),
	}

	for r := range g.rows {
		tiles := make([]string, cols)
		for c := range tiles {
			tiles[c] = TilePalette[rng.Intn(len(TilePalette))]
		}
		g.rows[r] = Row{
			BaseY: g.StartY + float64(r)*tile,
			Tiles: tiles,
		}
	}
	return g
}

// Width returns the grid width at zero offset.
func (g *Grid) Width() float64 {
	return g.TileSize * float64(g.Columns)
}

// Height returns the grid height.
func (g *Grid) Height() float64 {
	return g.TileSize * float64(g.Rows)
}

// Bounds returns the grid rectangle at zero offset.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(g.StartX, g.StartY, g.Width(), g.Height())
}

// InBounds reports whether c names a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Columns
}

// Band returns the fixed vertical band of row r.
// The band spans the grid width; only its Y range is used for hit testing.
func (g *Grid) Band(r int) core.Rect {
	return core.NewRect(g.StartX, g.StartY+float64(r)*g.TileSize, g.Width(), g.TileSize)
}

// Offset returns the live oscillation offset of row r, or 0 for an
// unknown row.
func (g *Grid) Offset(r int) float64 {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return g.rows[r].Offset
}

// setOffset updates the live offset of row r.
func (g *Grid) setOffset(r int, v float64) {
	if r >= 0 && r < len(g.rows) {
		g.rows[r].Offset = v
	}
}

// TileID returns the cosmetic id of a tile, or "" out of bounds.
func (g *Grid) TileID(c Cell) string {
	if !g.InBounds(c) {
		return ""
	}
	return g.rows[c.Row].Tiles[c.Col]
}

// TileRect returns the live scene rectangle of a tile, including its
// row's current offset.
func (g *Grid) TileRect(c Cell) core.Rect {
	x := g.StartX + g.Offset(c.Row) + float64(c.Col)*g.TileSize
	y := g.StartY + float64(c.Row)*g.TileSize
	return core.NewRect(x, y, g.TileSize, g.TileSize)
}
