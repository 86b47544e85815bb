package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/gogpu/gg/text"

	"Drawspace/internal/render"
	"Drawspace/internal/render/raster"
)

// fyneDevice draws frames as fyne canvas objects. Drawing redirected to an
// off-screen target goes to an in-memory raster instead. Labels are
// rasterized with face and shown as images, on screen and off.
type fyneDevice struct {
	size    fyne.Size
	objects []fyne.CanvasObject
	target  *raster.Target
	face    text.Face
	labels  map[labelKey]*image.RGBA
}

type labelKey struct {
	text string
	w, h int
	c    color.NRGBA
}

var _ render.Device = (*fyneDevice)(nil)

func newFyneDevice(face text.Face) *fyneDevice {
	return &fyneDevice{face: face, labels: make(map[labelKey]*image.RGBA)}
}

// begin starts a new on-screen frame of the given size.
func (d *fyneDevice) begin(size fyne.Size) {
	d.size = size
	d.objects = nil
}

func pos(x, y int) fyne.Position {
	return fyne.NewPos(float32(x), float32(y))
}

func (d *fyneDevice) Clear(c color.NRGBA) {
	if d.target != nil {
		d.target.Clear(c)
		return
	}
	bg := canvas.NewRectangle(c)
	bg.Resize(d.size)
	d.objects = []fyne.CanvasObject{bg}
}

func (d *fyneDevice) DrawLine(x1, y1, x2, y2 int, c color.NRGBA) {
	if d.target != nil {
		d.target.DrawLine(x1, y1, x2, y2, c)
		return
	}
	l := canvas.NewLine(c)
	l.StrokeWidth = 1
	l.Position1 = pos(x1, y1)
	l.Position2 = pos(x2, y2)
	d.objects = append(d.objects, l)
}

func (d *fyneDevice) FillRect(r image.Rectangle, c color.NRGBA) {
	if d.target != nil {
		d.target.FillRect(r, c)
		return
	}
	rect := canvas.NewRectangle(c)
	rect.Move(pos(r.Min.X, r.Min.Y))
	rect.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	d.objects = append(d.objects, rect)
}

func (d *fyneDevice) StrokeRect(r image.Rectangle, c color.NRGBA) {
	if d.target != nil {
		d.target.StrokeRect(r, c)
		return
	}
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = c
	rect.StrokeWidth = 1
	rect.Move(pos(r.Min.X, r.Min.Y))
	rect.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	d.objects = append(d.objects, rect)
}

func (d *fyneDevice) DrawTextCentered(r image.Rectangle, label string, c color.NRGBA) error {
	if d.target != nil {
		return d.target.DrawTextCentered(r, label, c)
	}
	img, err := d.label(label, r.Dx(), r.Dy(), c)
	if err != nil {
		return err
	}
	im := canvas.NewImageFromImage(img)
	im.FillMode = canvas.ImageFillStretch
	im.ScaleMode = canvas.ImageScalePixels
	im.Move(pos(r.Min.X, r.Min.Y))
	im.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	d.objects = append(d.objects, im)
	return nil
}

// label returns s drawn centered on a transparent w×h raster, cached per
// label, size and color.
func (d *fyneDevice) label(s string, w, h int, c color.NRGBA) (*image.RGBA, error) {
	k := labelKey{text: s, w: w, h: h, c: c}
	if img, ok := d.labels[k]; ok {
		return img, nil
	}
	if d.face == nil {
		return nil, render.ErrNoFont
	}
	t, err := raster.NewTarget(w, h)
	if err != nil {
		return nil, err
	}
	defer t.Release()
	t.SetFace(d.face)
	t.Clear(color.NRGBA{})
	bounds := image.Rect(0, 0, w, h)
	if err := t.DrawTextCentered(bounds, s, c); err != nil {
		return nil, err
	}
	img, err := t.ReadPixels(bounds)
	if err != nil {
		return nil, err
	}
	d.labels[k] = img
	return img, nil
}

func (d *fyneDevice) CreateTarget(w, h int) (render.Target, error) {
	t, err := raster.NewTarget(w, h)
	if err != nil {
		return nil, err
	}
	t.SetFace(d.face)
	return t, nil
}

func (d *fyneDevice) SetTarget(t render.Target) error {
	if t == nil {
		d.target = nil
		return nil
	}
	rt, ok := t.(*raster.Target)
	if !ok {
		return raster.ErrForeignTarget
	}
	d.target = rt
	return nil
}

func (d *fyneDevice) CurrentTarget() render.Target {
	if d.target == nil {
		return nil
	}
	return d.target
}

// ReadPixels reads from the current off-screen target. The window itself
// is drawn by fyne and cannot be read back.
func (d *fyneDevice) ReadPixels(r image.Rectangle) (*image.RGBA, error) {
	if d.target == nil {
		return nil, errScreenReadback
	}
	return d.target.ReadPixels(r)
}
