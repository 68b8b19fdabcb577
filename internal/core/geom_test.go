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

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 10, 10), 4, 4, NewRect(3, 3, 4, 4)},
		{"odd remainder", NewRect(0, 0, 11, 5), 4, 2, NewRect(3, 1, 4, 2)},
		{"offset outer", NewRect(5, 2, 10, 6), 10, 6, NewRect(5, 2, 10, 6)},
		{"larger than outer", NewRect(2, 1, 4, 4), 6, 6, NewRect(2, 1, 6, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Centered(tt.w, tt.h); got != tt.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, result, tt.expected)
		}
	}
}
