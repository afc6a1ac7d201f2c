package core

import "testing"

func TestCenterRect(t *testing.T) {
	tests := []struct {
		name         string
		areaW, areaH int
		w, h         int
		want         Rect
	}{
		{"fits", 80, 24, 20, 4, Rect{X: 30, Y: 10, W: 20, H: 4}},
		{"odd remainder", 11, 5, 4, 2, Rect{X: 3, Y: 1, W: 4, H: 2}},
		{"larger than area", 10, 3, 20, 6, Rect{X: 0, Y: 0, W: 20, H: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterRect(tt.areaW, tt.areaH, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("CenterRect(%d, %d, %d, %d) = %+v, want %+v",
					tt.areaW, tt.areaH, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 52, 4)
	if r.Right() != 54 || r.Bottom() != 7 {
		t.Errorf("edges = (%d, %d), want (54, 7)", r.Right(), r.Bottom())
	}
}

func TestClampKeepsPanelInBounds(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{40, 0, 56, 40},
		{-4, 0, 56, 0},
		{76, 0, 56, 56},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min should pick the smaller value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max should pick the larger value")
	}
}
