package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10.5, 10),
			b:        NewRect(10.25, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	player := NewRect(100, 0, 40, 60)

	tests := []struct {
		name     string
		platform Rect
		expected bool
	}{
		{"directly below", NewRect(70, 200, 100, 10), true},
		{"touching left edge", NewRect(0, 200, 100, 10), false},
		{"touching right edge", NewRect(140, 200, 100, 10), false},
		{"one unit in", NewRect(139, 200, 100, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.OverlapsX(tc.platform); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %v, expected 15", r.CenterX())
	}

	moved := r.Translate(1, -2)
	if moved.X != 6 || moved.Y != 8 {
		t.Errorf("Translate() = (%v, %v), expected (6, 8)", moved.X, moved.Y)
	}
	if r.X != 5 {
		t.Error("Translate should not modify the receiver")
	}
}

func TestCellConversion(t *testing.T) {
	tests := []struct {
		name     string
		v, unit  float64
		expected int
	}{
		{"origin", 0, 10, 0},
		{"inside first cell", 9.99, 10, 0},
		{"second cell", 10, 10, 1},
		{"negative rounds down", -0.5, 10, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cell(tc.v, tc.unit); got != tc.expected {
				t.Errorf("Cell(%v, %v) = %d, expected %d", tc.v, tc.unit, got, tc.expected)
			}
		})
	}

	if got := Cells(100, 10); got != 10 {
		t.Errorf("Cells(100, 10) = %d, expected 10", got)
	}
	if got := Cells(10, 20); got != 1 {
		t.Errorf("Cells(10, 20) = %d, expected at least 1", got)
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
