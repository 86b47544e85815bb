// Package board holds the interaction controller: the state machine that
// turns pointer, resize and quit events into strokes, palette actions and
// exports.
package board

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"Drawspace/internal/export"
	"Drawspace/internal/geom"
	"Drawspace/internal/render"
	"Drawspace/internal/state"
	"Drawspace/internal/tools"
)

var ErrNoDevice = errors.New("no render device for raster export")

type drag struct {
	lastX, lastY int // canvas-local pixels
	stroke       string
}

// Controller owns the drawing state. It is not safe for concurrent use;
// all events must be delivered from one goroutine.
type Controller struct {
	store    *state.Store
	palette  tools.Palette
	active   color.NRGBA
	window   image.Point
	viewport geom.Viewport
	mode     Mode
	drag     drag
	dev      render.Device
	logger   *log.Logger

	// OnExport, if set, is called after every export attempt.
	OnExport func(a tools.Export, err error)
	// OnClear, if set, is called after the canvas was cleared.
	OnClear func()
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithPalette(p tools.Palette) Option {
	return func(c *Controller) { c.palette = p }
}

// New returns an idle controller for a w×h window. dev is used for raster
// exports; it may be nil if only PDF exports are needed.
func New(w, h int, dev render.Device, opts ...Option) *Controller {
	c := &Controller{
		store:   state.NewStore(),
		palette: tools.Default(),
		active:  tools.Black,
		dev:     dev,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.resize(w, h)
	return c
}

func (c *Controller) Mode() Mode              { return c.mode }
func (c *Controller) Active() color.NRGBA     { return c.active }
func (c *Controller) Viewport() geom.Viewport { return c.viewport }
func (c *Controller) Store() *state.Store     { return c.store }

// Scene returns what the renderer needs to draw the current frame.
func (c *Controller) Scene() render.Scene {
	return render.Scene{
		Window:   c.window,
		Viewport: c.viewport,
		Origin:   image.Pt(0, tools.ToolbarHeight),
		Segments: c.store,
		Palette:  c.palette,
		Active:   c.active,
	}
}

// Handle applies one event. It returns false once the controller has
// terminated; later events are ignored.
func (c *Controller) Handle(ev Event) bool {
	if c.mode == Terminated {
		return false
	}
	switch ev := ev.(type) {
	case PointerDown:
		c.pointerDown(ev)
	case PointerUp:
		c.pointerUp(ev)
	case PointerMove:
		c.pointerMove(ev)
	case Resize:
		c.resize(ev.W, ev.H)
	case Quit:
		c.logger.Info("quit", "segments", c.store.Len(), "strokes", c.store.Strokes())
		c.mode = Terminated
		return false
	default:
		c.logger.Debug("ignoring event", "event", fmt.Sprintf("%T", ev))
	}
	return true
}

func (c *Controller) pointerDown(ev PointerDown) {
	if ev.Y < tools.ToolbarHeight {
		if e, ok := c.palette.HitTest(ev.X, ev.Y); ok {
			c.apply(e.Action)
		}
		return
	}
	if ev.Button != ButtonPrimary || c.mode != Idle {
		return
	}
	c.mode = Dragging
	c.drag = drag{
		lastX:  ev.X,
		lastY:  ev.Y - tools.ToolbarHeight,
		stroke: state.NewStrokeID(),
	}
}

func (c *Controller) pointerUp(ev PointerUp) {
	if ev.Button != ButtonPrimary || c.mode != Dragging {
		return
	}
	c.mode = Idle
	c.logger.Debug("stroke finished", "stroke", c.drag.stroke, "segments", c.store.StrokeLen(c.drag.stroke))
	c.drag = drag{}
}

// pointerMove extends the current stroke. Samples over the toolbar are
// dropped without moving the last position, so the stroke continues from
// where it left the canvas.
func (c *Controller) pointerMove(ev PointerMove) {
	if c.mode != Dragging || ev.Y <= tools.ToolbarHeight {
		return
	}
	x, y := ev.X, ev.Y-tools.ToolbarHeight
	x1, y1, ok := geom.ToRelative(c.drag.lastX, c.drag.lastY, c.viewport)
	if !ok {
		return
	}
	x2, y2, _ := geom.ToRelative(x, y, c.viewport)
	seg := state.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c.active, Stroke: c.drag.stroke}
	if err := c.store.Append(seg); err != nil {
		c.logger.Warn("segment dropped", "err", err)
		return
	}
	c.drag.lastX, c.drag.lastY = x, y
}

func (c *Controller) resize(w, h int) {
	c.window = image.Pt(w, h)
	c.viewport = geom.FromWindow(w, h, tools.ToolbarHeight)
	if !c.viewport.Valid() {
		c.logger.Debug("degenerate viewport", "w", c.viewport.W, "h", c.viewport.H)
	}
}

func (c *Controller) apply(a tools.Action) {
	switch a := a.(type) {
	case tools.SelectColor:
		c.active = a.Color
	case tools.Clear:
		c.store.Clear()
		c.logger.Info("canvas cleared")
		if c.OnClear != nil {
			c.OnClear()
		}
	case tools.Export:
		err := c.export(a)
		if err != nil {
			c.logger.Error("export failed", "path", a.Path, "format", a.Format, "err", err)
		} else {
			c.logger.Info("exported", "path", a.Path, "format", a.Format,
				"size", fmt.Sprintf("%dx%d", c.viewport.W, c.viewport.H), "segments", c.store.Len())
		}
		if c.OnExport != nil {
			c.OnExport(a, err)
		}
	default:
		panic(fmt.Sprintf("board: unhandled palette action %T", a))
	}
}

func (c *Controller) export(a tools.Export) error {
	vp := c.viewport
	switch a.Format {
	case tools.FormatPNG:
		if c.dev == nil {
			return ErrNoDevice
		}
		return export.PNG(c.dev, c.store, vp.W, vp.H, a.Path)
	case tools.FormatPDF:
		return export.PDF(c.store, vp.W, vp.H, a.Path)
	}
	return fmt.Errorf("unsupported export format %v", a.Format)
}
