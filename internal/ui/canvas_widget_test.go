package ui

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"
	"github.com/gogpu/gg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Drawspace/internal/board"
	"Drawspace/internal/render"
	"Drawspace/internal/render/raster"
	"Drawspace/internal/tools"
)

func testFace(t *testing.T) text.Face {
	t.Helper()
	face, err := raster.LoadFace("", raster.LabelSize)
	require.NoError(t, err)
	return face
}

func newTestWidget(t *testing.T, opts ...board.Option) (*CanvasWidget, *board.Controller) {
	t.Helper()
	w, ctrl, _ := newWidgetWithFace(t, testFace(t), opts...)
	return w, ctrl
}

func newWidgetWithFace(t *testing.T, face text.Face, opts ...board.Option) (*CanvasWidget, *board.Controller, *bytes.Buffer) {
	t.Helper()
	test.NewTempApp(t)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	dev := newFyneDevice(face)
	opts = append([]board.Option{board.WithLogger(logger)}, opts...)
	ctrl := board.New(WindowWidth, WindowHeight, dev, opts...)
	w := NewCanvasWidget(ctrl, render.New(logger), dev)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return w, ctrl, &buf
}

func press(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     b,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func linesWithColor(objs []fyne.CanvasObject, c color.Color) int {
	n := 0
	for _, o := range objs {
		if l, ok := o.(*canvas.Line); ok && l.StrokeColor == c {
			n++
		}
	}
	return n
}

func TestWidgetDrawsStroke(t *testing.T) {
	w, ctrl := newTestWidget(t)

	w.MouseDown(press(65, 25, desktop.MouseButtonPrimary)) // red
	w.MouseUp(press(65, 25, desktop.MouseButtonPrimary))
	w.MouseDown(press(10, 60, desktop.MouseButtonPrimary))
	w.Dragged(drag(100, 200))
	w.Dragged(drag(200, 300))
	w.DragEnd()

	assert.Equal(t, board.Idle, ctrl.Mode())
	assert.Equal(t, 2, ctrl.Store().Len())

	r := test.WidgetRenderer(w)
	assert.Equal(t, 2, linesWithColor(r.Objects(), tools.Red))

	var l *canvas.Line
	for _, o := range r.Objects() {
		if cand, ok := o.(*canvas.Line); ok && cand.StrokeColor == tools.Red {
			l = cand
			break
		}
	}
	require.NotNil(t, l)
	assert.Equal(t, fyne.NewPos(10, 60), l.Position1)
	assert.Equal(t, fyne.NewPos(100, 200), l.Position2)
}

func TestWidgetHoverMovesOnlyWhileDragging(t *testing.T) {
	w, ctrl := newTestWidget(t)
	w.MouseMoved(press(100, 100, desktop.MouseButtonPrimary))
	assert.Zero(t, ctrl.Store().Len())

	w.MouseDown(press(100, 100, desktop.MouseButtonPrimary))
	w.MouseMoved(press(150, 150, desktop.MouseButtonPrimary))
	w.MouseUp(press(150, 150, desktop.MouseButtonPrimary))
	assert.Equal(t, 1, ctrl.Store().Len())
	assert.Equal(t, board.Idle, ctrl.Mode())
}

func TestWidgetResizeRescalesStrokes(t *testing.T) {
	w, ctrl := newTestWidget(t)
	w.MouseDown(press(0, 50, desktop.MouseButtonPrimary))
	w.Dragged(drag(800, 600))
	w.DragEnd()

	w.Resize(fyne.NewSize(400, 325))
	assert.Equal(t, 400, ctrl.Viewport().W)
	assert.Equal(t, 275, ctrl.Viewport().H)

	r := test.WidgetRenderer(w)
	for _, o := range r.Objects() {
		if l, ok := o.(*canvas.Line); ok && l.StrokeColor == tools.Black {
			assert.Equal(t, fyne.NewPos(0, 50), l.Position1)
			assert.Equal(t, fyne.NewPos(400, 325), l.Position2)
			return
		}
	}
	t.Fatal("stroke not drawn after resize")
}

func labelImages(objs []fyne.CanvasObject) []*canvas.Image {
	var out []*canvas.Image
	for _, o := range objs {
		if im, ok := o.(*canvas.Image); ok {
			out = append(out, im)
		}
	}
	return out
}

func hasInk(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return true
			}
		}
	}
	return false
}

func TestWidgetToolbarLabels(t *testing.T) {
	w, ctrl := newTestWidget(t)

	var labelled []tools.Entry
	for _, e := range ctrl.Scene().Palette {
		if e.Label != "" {
			labelled = append(labelled, e)
		}
	}
	require.Len(t, labelled, 3)

	images := labelImages(test.WidgetRenderer(w).Objects())
	require.Len(t, images, len(labelled))
	for i, im := range images {
		r := labelled[i].Rect
		assert.Equal(t, fyne.NewPos(float32(r.Min.X), float32(r.Min.Y)), im.Position(), labelled[i].Label)
		assert.Equal(t, fyne.NewSize(float32(r.Dx()), float32(r.Dy())), im.Size(), labelled[i].Label)
		require.NotNil(t, im.Image)
		assert.True(t, hasInk(im.Image), "%s label has no glyphs", labelled[i].Label)
	}
}

func TestWidgetLabelsReuseRasters(t *testing.T) {
	w, _ := newTestWidget(t)
	first := labelImages(test.WidgetRenderer(w).Objects())
	w.Refresh()
	second := labelImages(test.WidgetRenderer(w).Objects())
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i].Image, second[i].Image)
	}
}

func TestWidgetWithoutFontKeepsButtons(t *testing.T) {
	w, _, buf := newWidgetWithFace(t, nil)
	w.Refresh()

	objs := test.WidgetRenderer(w).Objects()
	assert.Empty(t, labelImages(objs))

	found := false
	for _, o := range objs {
		if rect, ok := o.(*canvas.Rectangle); ok && rect.FillColor == tools.Gray {
			found = true
			assert.Equal(t, fyne.NewPos(170, 10), rect.Position())
		}
	}
	assert.True(t, found, "Clear button is drawn without its label")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("label=Clear")))
}

func TestWidgetQuit(t *testing.T) {
	w, ctrl := newTestWidget(t)
	quit := 0
	w.OnQuit = func() { quit++ }
	w.Quit()
	assert.Equal(t, board.Terminated, ctrl.Mode())
	assert.Equal(t, 1, quit)
}

func TestWidgetExportThroughFyneDevice(t *testing.T) {
	dir := t.TempDir()
	p := tools.Default()
	p[5].Action = tools.Export{Format: tools.FormatPNG, Path: filepath.Join(dir, "out.png")}
	var exportErr error
	w, ctrl := newTestWidget(t, board.WithPalette(p))
	ctrl.OnExport = func(_ tools.Export, err error) { exportErr = err }

	w.MouseDown(press(10, 60, desktop.MouseButtonPrimary))
	w.Dragged(drag(300, 300))
	w.DragEnd()
	w.MouseDown(press(300, 25, desktop.MouseButtonPrimary))

	require.NoError(t, exportErr)
	assert.FileExists(t, filepath.Join(dir, "out.png"))
	assert.Nil(t, w.dev.CurrentTarget(), "drawing goes back to the window")
}

func TestFyneDeviceOffscreen(t *testing.T) {
	d := newFyneDevice(nil)
	d.begin(fyne.NewSize(100, 100))

	_, err := d.ReadPixels(image.Rect(0, 0, 10, 10))
	assert.ErrorIs(t, err, errScreenReadback)

	tg, err := d.CreateTarget(10, 10)
	require.NoError(t, err)
	defer tg.Release()
	require.NoError(t, d.SetTarget(tg))

	d.Clear(render.Background)
	d.FillRect(image.Rect(0, 0, 5, 5), tools.Red)
	assert.Empty(t, d.objects, "off-screen drawing does not touch the window")
	assert.ErrorIs(t, d.DrawTextCentered(image.Rect(0, 0, 10, 10), "x", tools.Black), render.ErrNoFont)

	img, err := d.ReadPixels(image.Rect(0, 0, 10, 10))
	require.NoError(t, err)
	assert.Greater(t, img.RGBAAt(2, 2).R, uint8(200))
	assert.Less(t, img.RGBAAt(2, 2).G, uint8(60))

	require.NoError(t, d.SetTarget(nil))
	d.Clear(render.Background)
	assert.Len(t, d.objects, 1)
}

type strayTarget struct{}

func (strayTarget) Size() (int, int) { return 0, 0 }
func (strayTarget) Release()         {}

func TestFyneDeviceRejectsForeignTarget(t *testing.T) {
	d := newFyneDevice(nil)
	assert.ErrorIs(t, d.SetTarget(strayTarget{}), raster.ErrForeignTarget)
}
