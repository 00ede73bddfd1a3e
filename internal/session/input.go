package session

import (
	"math"

	"github.com/vovakirdan/sky-memory/internal/core"
)

// InputResolver maps scene points to logical cells. It reads every row's
// live offset at call time; nothing is cached between calls.
type InputResolver struct {
	grid *Grid
}

// Resolve returns the cell under (x, y), or false if the point misses the
// grid. The row is chosen by its fixed band; the row's current offset is
// then removed from x before the column is computed.
func (r InputResolver) Resolve(x, y float64) (Cell, bool) {
	g := r.grid
	if g == nil || g.TileSize <= 0 || !core.Finite(x) || !core.Finite(y) {
		return Cell{}, false
	}

	row := -1
	for i := 0; i < g.Rows; i++ {
		if g.Band(i).ContainsY(y) {
			row = i
			break
		}
	}
	if row < 0 {
		return Cell{}, false
	}

	local := x - g.Offset(row) - g.StartX
	col := int(math.Floor(local / g.TileSize))
	c := Cell{Row: row, Col: col}
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return c, true
}
