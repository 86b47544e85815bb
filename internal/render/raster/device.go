package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/gg/text"

	"Drawspace/internal/render"
)

// Device is a render.Device whose screen is itself an in-memory target.
// It is used wherever frames have to be produced without a window.
type Device struct {
	screen *Target
	cur    *Target
	face   text.Face
}

var _ render.Device = (*Device)(nil)

// NewDevice creates a device with a w×h screen. face may be nil, in which
// case labels are not drawn.
func NewDevice(w, h int, face text.Face) (*Device, error) {
	screen, err := NewTarget(w, h)
	if err != nil {
		return nil, err
	}
	screen.SetFace(face)
	return &Device{screen: screen, cur: screen, face: face}, nil
}

// Screen returns the on-screen target.
func (d *Device) Screen() *Target { return d.screen }

func (d *Device) CreateTarget(w, h int) (render.Target, error) {
	t, err := NewTarget(w, h)
	if err != nil {
		return nil, err
	}
	t.SetFace(d.face)
	return t, nil
}

func (d *Device) SetTarget(t render.Target) error {
	if t == nil {
		d.cur = d.screen
		return nil
	}
	rt, ok := t.(*Target)
	if !ok {
		return ErrForeignTarget
	}
	if rt.released {
		return render.ErrReleased
	}
	d.cur = rt
	return nil
}

func (d *Device) CurrentTarget() render.Target {
	if d.cur == d.screen {
		return nil
	}
	return d.cur
}

func (d *Device) ReadPixels(r image.Rectangle) (*image.RGBA, error) {
	return d.cur.ReadPixels(r)
}

func (d *Device) Clear(c color.NRGBA) { d.cur.Clear(c) }

func (d *Device) DrawLine(x1, y1, x2, y2 int, c color.NRGBA) {
	d.cur.DrawLine(x1, y1, x2, y2, c)
}

func (d *Device) FillRect(r image.Rectangle, c color.NRGBA)   { d.cur.FillRect(r, c) }
func (d *Device) StrokeRect(r image.Rectangle, c color.NRGBA) { d.cur.StrokeRect(r, c) }

func (d *Device) DrawTextCentered(r image.Rectangle, label string, c color.NRGBA) error {
	return d.cur.DrawTextCentered(r, label, c)
}

// Close releases the screen target.
func (d *Device) Close() {
	d.screen.Release()
}
