// Package raster implements render targets in memory on top of the gg
// software rasterizer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"

	"Drawspace/internal/render"
)

var (
	ErrSize          = errors.New("invalid target size")
	ErrOutOfBounds   = errors.New("rectangle outside target")
	ErrForeignTarget = errors.New("target does not belong to this device")
)

// Target is an in-memory RGBA raster.
type Target struct {
	dc       *gg.Context
	w, h     int
	face     text.Face
	err      error
	released bool
}

var (
	_ render.Surface = (*Target)(nil)
	_ render.Target  = (*Target)(nil)
)

// NewTarget allocates a w×h target. Both sizes must be positive.
func NewTarget(w, h int) (*Target, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrSize)
	}
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1)
	return &Target{dc: dc, w: w, h: h}, nil
}

func (t *Target) Size() (int, int) { return t.w, t.h }

// SetFace sets the font labels are drawn with. nil disables labels.
func (t *Target) SetFace(face text.Face) { t.face = face }

// Err returns the first drawing error since the target was created or last
// cleared. While it is set, ReadPixels fails.
func (t *Target) Err() error { return t.err }

// Release frees the raster. It is safe to call more than once.
func (t *Target) Release() {
	if t.released {
		return
	}
	t.released = true
	if err := t.dc.Close(); err != nil && t.err == nil {
		t.err = err
	}
}

func (t *Target) keep(err error) {
	if err != nil && t.err == nil {
		t.err = err
	}
}

// Clear fills the whole raster with c and forgets earlier drawing errors.
func (t *Target) Clear(c color.NRGBA) {
	if t.released {
		return
	}
	t.err = nil
	t.dc.ClearWithColor(gg.FromColor(c))
}

// DrawLine strokes a one pixel wide line through the pixel centers of both
// endpoints. A zero-length line sets a single pixel.
func (t *Target) DrawLine(x1, y1, x2, y2 int, c color.NRGBA) {
	if t.released {
		return
	}
	if x1 == x2 && y1 == y2 {
		if image.Pt(x1, y1).In(image.Rect(0, 0, t.w, t.h)) {
			t.dc.SetPixel(x1, y1, gg.FromColor(c))
		}
		return
	}
	t.dc.SetColor(c)
	t.dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	t.keep(t.dc.Stroke())
}

func (t *Target) FillRect(r image.Rectangle, c color.NRGBA) {
	if t.released || r.Empty() {
		return
	}
	t.dc.SetColor(c)
	t.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	t.keep(t.dc.Fill())
}

func (t *Target) StrokeRect(r image.Rectangle, c color.NRGBA) {
	if t.released || r.Empty() {
		return
	}
	t.dc.SetColor(c)
	t.dc.DrawRectangle(float64(r.Min.X)+0.5, float64(r.Min.Y)+0.5, float64(r.Dx()-1), float64(r.Dy()-1))
	t.keep(t.dc.Stroke())
}

func (t *Target) DrawTextCentered(r image.Rectangle, label string, c color.NRGBA) error {
	if t.released {
		return render.ErrReleased
	}
	if t.face == nil {
		return render.ErrNoFont
	}
	t.dc.SetFont(t.face)
	if w, _ := t.dc.MeasureString(label); w <= 0 {
		return fmt.Errorf("%q: %w", label, render.ErrLabel)
	}
	t.dc.SetColor(c)
	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	t.dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
	return nil
}

// ReadPixels copies r out of the target into a new image whose bounds start
// at the origin.
func (t *Target) ReadPixels(r image.Rectangle) (*image.RGBA, error) {
	if t.released {
		return nil, render.ErrReleased
	}
	if t.err != nil {
		return nil, t.err
	}
	bounds := image.Rect(0, 0, t.w, t.h)
	if r.Empty() || !r.In(bounds) {
		return nil, fmt.Errorf("%v not in %v: %w", r, bounds, ErrOutOfBounds)
	}
	if err := t.dc.FlushGPU(); err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(out, image.Point{}, t.dc.Image(), r, xdraw.Src, nil)
	return out, nil
}
