package state

import (
	"image/color"
	"math"
)

// Segment is one straight stroke sample. Endpoints are fractions of the
// canvas size at the time the segment was captured.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  color.NRGBA
	Stroke string // ID of the drag that produced the segment
}

// Finite reports whether all four coordinates are finite numbers.
func (s Segment) Finite() bool {
	for _, v := range [4]float64{s.X1, s.Y1, s.X2, s.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}
