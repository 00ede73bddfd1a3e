package core

import (
	"strings"
)

// Cell is a single character cell of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the game draws into and the terminal host
// displays. Coordinates are cells with (0, 0) at the top-left corner.
// Writes outside the buffer are dropped.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major
}

// NewScreen creates a cleared screen buffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it. The game redraws
// every frame, so nothing is preserved.
func (s *Screen) Resize(width, height int) {
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places a colored rune at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextRight writes text so that it ends margin cells before the right
// edge.
func (s *Screen) DrawTextRight(y, margin int, text string, c Color) {
	s.DrawTextColored(s.width-margin-len([]rune(text)), y, text, c)
}

// DrawTextCenteredIn writes text centered within the span [x, x+w).
func (s *Screen) DrawTextCenteredIn(x, w, y int, text string, c Color) {
	s.DrawTextColored(x+(w-len([]rune(text)))/2, y, text, c)
}

// DrawPanel clears a rectangle and outlines it with box-drawing
// characters in the given color.
func (s *Screen) DrawPanel(x, y, w, h int, c Color) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for yy := y; yy <= bottom; yy++ {
		for xx := x; xx <= right; xx++ {
			s.SetColored(xx, yy, ' ', ColorDefault)
		}
	}

	s.SetColored(x, y, '┌', c)
	s.SetColored(right, y, '┐', c)
	s.SetColored(x, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
	s.DrawHLine(x+1, y, w-2, '─', c)
	s.DrawHLine(x+1, bottom, w-2, '─', c)
	for yy := y + 1; yy < bottom; yy++ {
		s.SetColored(x, yy, '│', c)
		s.SetColored(right, yy, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetColored(x+i, y, r, c)
	}
}

// Row returns the specified row as a plain string.
// Out-of-range rows are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String converts the screen buffer to a plain string without colors,
// one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
