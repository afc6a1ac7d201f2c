// Package core holds the terminal-independent building blocks of the game
// board: the cell screen, colours, input frames and layout geometry. It
// does not import Bubble Tea.
package core

// Rect is a box of cells; X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at x, y sized w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenterRect returns a w by h rectangle centred inside an area of
// areaW by areaH cells. Offsets never go negative.
func CenterRect(areaW, areaH, w, h int) Rect {
	return Rect{X: Max(0, (areaW-w)/2), Y: Max(0, (areaH-h)/2), W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
