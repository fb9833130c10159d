// ABOUTME: Overlay rectangle placement inside the terminal
// ABOUTME: Width and top edge follow configured fractions, shifted by the drag offset

package ui

import "math"

const (
	// minHeight keeps an empty overlay from collapsing: panel border,
	// one keycap row and the modifier hint line.
	minHeight = 6
	minWidth  = 12
)

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type offset struct {
	dx, dy int
}

// placeOverlay centres the overlay horizontally with its top edge at
// topFrac of the terminal height, applies off and clamps the result to
// the terminal.
func placeOverlay(termW, termH int, widthFrac, topFrac float64, off offset) rect {
	r := anchor(termW, termH, widthFrac, topFrac)
	r.X = clamp(r.X+off.dx, 0, termW-r.W)
	r.Y = clamp(r.Y+off.dy, 0, termH-r.H)
	return r
}

// anchor is the unclamped, undragged overlay rectangle.
func anchor(termW, termH int, widthFrac, topFrac float64) rect {
	w := int(math.Round(float64(termW) * widthFrac))
	w = min(max(w, minWidth), termW)
	return rect{
		X: (termW - w) / 2,
		Y: int(math.Round(float64(termH) * topFrac)),
		W: w,
		H: min(minHeight, termH),
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
