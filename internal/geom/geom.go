// Package geom converts between canvas pixels and canvas-relative fractions.
package geom

import "image"

// Viewport is the pixel size of the drawable canvas area.
type Viewport struct {
	W, H int
}

// FromWindow returns the canvas viewport for a window of w×h pixels with a
// toolbar strip of the given height along the top.
func FromWindow(w, h, toolbar int) Viewport {
	vp := Viewport{W: w, H: h - toolbar}
	if vp.W < 0 {
		vp.W = 0
	}
	if vp.H < 0 {
		vp.H = 0
	}
	return vp
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0
}

// Rect returns the viewport as a rectangle anchored at the origin.
func (v Viewport) Rect() image.Rectangle {
	return image.Rect(0, 0, v.W, v.H)
}

// ToRelative converts canvas-local pixels into fractions of the viewport.
// ok is false when the viewport is degenerate.
func ToRelative(px, py int, vp Viewport) (fx, fy float64, ok bool) {
	if !vp.Valid() {
		return 0, 0, false
	}
	return float64(px) / float64(vp.W), float64(py) / float64(vp.H), true
}

// ToAbsolute is the inverse of ToRelative, truncating toward zero.
func ToAbsolute(fx, fy float64, vp Viewport) (px, py int, ok bool) {
	if !vp.Valid() {
		return 0, 0, false
	}
	return trunc(fx * float64(vp.W)), trunc(fy * float64(vp.H)), true
}

// epsilon absorbs the rounding error of a pixel -> fraction -> pixel round
// trip, so that 10/550*550 truncates to 10 and not 9.
const epsilon = 1e-9

func trunc(v float64) int {
	if v < 0 {
		return int(v - epsilon)
	}
	return int(v + epsilon)
}
