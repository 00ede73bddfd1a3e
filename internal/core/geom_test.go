package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"bottom-left corner (inclusive)", 10, 10, true},
		{"top-right corner (exclusive)", 30, 25, false},
		{"just inside top edge", 15, 24.999, true},
		{"on right edge", 30, 15, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside below", 15, 5, false},
		{"outside above", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(Pt(tc.x, tc.y))
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectBands(t *testing.T) {
	r := NewRect(0, 9, 90, 9)

	if !r.ContainsY(9) || r.ContainsY(18) {
		t.Error("ContainsY should be half-open [Y, Top)")
	}
	// The band ignores X entirely.
	if !r.ContainsY(12) || r.ContainsX(-1) {
		t.Error("ContainsX/ContainsY should test one axis each")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Top() != 25 {
		t.Errorf("Top() = %v, expected 25", r.Top())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}

	moved := r.Translate(-5, 2)
	if moved.X != 0 || moved.Y != 12 || moved.W != r.W || moved.H != r.H {
		t.Errorf("Translate(-5, 2) = %v, expected (0, 12, 20, 15)", moved)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		v        float64
		expected bool
	}{
		{0, true},
		{-3.5, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for _, tc := range tests {
		if Finite(tc.v) != tc.expected {
			t.Errorf("Finite(%v) = %v, expected %v", tc.v, !tc.expected, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{5, 10, 10},
		{10, 5, 10},
		{-3, 0, 0},
	}

	for _, tc := range tests {
		if got := Max(tc.a, tc.b); got != tc.expected {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
