package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{80, 24, 80, 24},
		{1, 1, 1, 1},
		{0, 5, 0, 5},
		{-3, -1, 0, 0},
	}

	for _, tc := range tests {
		s := NewScreen(tc.w, tc.h)
		if s.Width() != tc.wantW || s.Height() != tc.wantH {
			t.Errorf("NewScreen(%d, %d) size = %dx%d, expected %dx%d",
				tc.w, tc.h, s.Width(), s.Height(), tc.wantW, tc.wantH)
		}
	}

	s := NewScreen(4, 2)
	if got := s.String(); got != "    \n    " {
		t.Errorf("new screen = %q, expected blank rows", got)
	}
}

func TestScreenSetAndBounds(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(1, 2, '✈', ColorCyan)

	if cell := s.GetCell(1, 2); cell.Rune != '✈' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected cyan plane", cell)
	}

	// Out-of-bounds writes are dropped and reads are blank.
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if cell := s.GetCell(p[0], p[1]); cell != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], cell)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write reached the buffer")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(0, 0, '#', ColorGreen)

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if cell := s.GetCell(0, 0); cell != blank {
		t.Errorf("GetCell(0, 0) after resize = %+v, expected blank", cell)
	}

	s.Resize(2, 2)
	s.SetColored(1, 1, '#', ColorGreen)
	if got := s.Row(1); got != " #" {
		t.Errorf("Row(1) after shrink = %q, expected %q", got, " #")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"left", func(s *Screen) { s.DrawTextColored(1, 0, "abc", ColorDefault) }, " abc      "},
		{"clipped", func(s *Screen) { s.DrawTextColored(8, 0, "abc", ColorDefault) }, "        ab"},
		{"negative start", func(s *Screen) { s.DrawTextColored(-1, 0, "abc", ColorDefault) }, "bc        "},
		{"right", func(s *Screen) { s.DrawTextRight(0, 1, "abc", ColorDefault) }, "      abc "},
		{"right wide runes", func(s *Screen) { s.DrawTextRight(0, 0, "★★", ColorDefault) }, "        ★★"},
		{"centered", func(s *Screen) { s.DrawTextCenteredIn(2, 6, 0, "ab", ColorDefault) }, "    ab    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenPanel(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawHLine(0, 1, 6, '~', ColorBlue)
	s.DrawPanel(1, 0, 4, 3, ColorYellow)

	expected := []string{
		" ┌──┐ ",
		"~│  │~",
		" └──┘ ",
		"      ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(1, 0).Color; c != ColorYellow {
		t.Errorf("border color = %v, expected %v", c, ColorYellow)
	}
	if c := s.GetCell(2, 1); c != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("panel interior = %+v, expected cleared", c)
	}

	// Degenerate panels draw nothing.
	s.Clear()
	s.DrawPanel(0, 0, 1, 3, ColorRed)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("1-wide panel drew cells")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}
