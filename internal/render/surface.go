// Package render draws frames: the canvas strokes and the toolbar.
//
// Drawing goes through a Surface so the same code serves the on-screen
// window and the off-screen targets used for export.
package render

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrNoFont is returned by DrawTextCentered when the surface has no
	// font to draw labels with.
	ErrNoFont = errors.New("no font available")
	// ErrLabel is returned when a label could not be laid out or drawn.
	ErrLabel = errors.New("label could not be rendered")
	// ErrReleased is returned when a released target is used.
	ErrReleased = errors.New("render target released")
)

// Surface is the set of primitives a frame is drawn with. Coordinates are
// integer pixels with the origin at the top-left corner.
type Surface interface {
	Clear(c color.NRGBA)
	DrawLine(x1, y1, x2, y2 int, c color.NRGBA)
	FillRect(r image.Rectangle, c color.NRGBA)
	StrokeRect(r image.Rectangle, c color.NRGBA)
	DrawTextCentered(r image.Rectangle, label string, c color.NRGBA) error
}

// Target is an off-screen raster that a Device can draw into.
type Target interface {
	Size() (w, h int)
	Release()
}

// Device is a Surface whose drawing can be redirected to off-screen
// targets and read back.
type Device interface {
	Surface
	CreateTarget(w, h int) (Target, error)
	// SetTarget redirects drawing to t; nil restores the screen.
	SetTarget(t Target) error
	CurrentTarget() Target
	// ReadPixels copies r of the current target.
	ReadPixels(r image.Rectangle) (*image.RGBA, error)
}
