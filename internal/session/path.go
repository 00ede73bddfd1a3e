package session

import "math/rand"

// GeneratePath builds the hidden traversal: one cell per row, starting in
// the middle column of row 0. Between rows the column moves by a uniform
// step in {-1, 0, +1}; a step that would leave the grid is dropped and the
// column stays put. There is no wrap-around and no clamping.
func GeneratePath(rng *rand.Rand, rows, cols int) []Cell {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	path := make([]Cell, 0, rows)
	col := cols / 2
	for row := 0; row < rows; row++ {
		path = append(path, Cell{Row: row, Col: col})
		if row == rows-1 {
			break
		}

		next := col + rng.Intn(3) - 1
		if next >= 0 && next < cols {
			col = next
		}
	}
	return path
}
