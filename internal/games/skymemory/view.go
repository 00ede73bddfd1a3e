package skymemory

import (
	"math"

	"github.com/vovakirdan/sky-memory/internal/core"
)

// cellAspect is the scene height of one terminal cell relative to its
// width. Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// hudRows is the number of screen rows above the board.
const hudRows = 2

// viewport maps between screen cells (y down) and scene points (y up,
// origin bottom-left of the board area).
type viewport struct {
	cols int // Board width in cells
	rows int // Board height in cells
	top  int // Screen row of the board's top edge
}

func newViewport(screenW, screenH int) viewport {
	return viewport{
		cols: core.Max(screenW, 0),
		rows: core.Max(screenH-hudRows, 0),
		top:  hudRows,
	}
}

// sceneSize returns the scene dimensions covered by the board.
func (v viewport) sceneSize() (w, h float64) {
	return float64(v.cols), float64(v.rows) * cellAspect
}

// toScene returns the scene point at the centre of screen cell (cx, cy).
func (v viewport) toScene(cx, cy int) core.Point {
	fromBottom := v.top + v.rows - 1 - cy
	return core.Pt(float64(cx)+0.5, (float64(fromBottom)+0.5)*cellAspect)
}

// toCell returns the screen cell containing scene point p.
func (v viewport) toCell(p core.Point) (cx, cy int) {
	cx = int(math.Floor(p.X))
	cy = v.top + v.rows - 1 - int(math.Floor(p.Y/cellAspect))
	return cx, cy
}

// contains reports whether screen cell (cx, cy) lies on the board.
func (v viewport) contains(cx, cy int) bool {
	return cx >= 0 && cx < v.cols && cy >= v.top && cy < v.top+v.rows
}
