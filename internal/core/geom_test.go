package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{4, 4, true},
		{5, 0, false},
		{0, 5, false},
		{-1, 2, false},
		{2, 2, true},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 10)

	if inner.X != 30 || inner.Y != 7 || inner.W != 20 || inner.H != 10 {
		t.Errorf("Centered(20, 10) = %+v", inner)
	}

	// Larger than the container overflows symmetrically.
	big := NewRect(0, 0, 10, 10).Centered(14, 10)
	if big.X != -2 {
		t.Errorf("overflowing Centered X = %d, expected -2", big.X)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}
