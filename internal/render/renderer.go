package render

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"Drawspace/internal/geom"
	"Drawspace/internal/state"
	"Drawspace/internal/tools"
)

var (
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Outline    = color.NRGBA{A: 255}
	LabelColor = color.NRGBA{A: 255}
	Separator  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	Marker     = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

// Scene is everything a frame is drawn from. It is read, never modified.
type Scene struct {
	Window   image.Point // window size in pixels
	Viewport geom.Viewport
	Origin   image.Point // top-left corner of the canvas in the window
	Segments state.Source
	Palette  tools.Palette
	Active   color.NRGBA
}

// Renderer draws frames. The zero value is not usable, call New.
type Renderer struct {
	logger *log.Logger
	warned map[string]bool
}

func New(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{logger: logger, warned: make(map[string]bool)}
}

// Frame clears s, replays every segment against the scene's current
// viewport and draws the toolbar on top.
func (r *Renderer) Frame(s Surface, sc Scene) {
	s.Clear(Background)
	if sc.Segments != nil {
		Replay(s, sc.Segments, sc.Viewport, sc.Origin)
	}
	r.Toolbar(s, sc)
}

// Toolbar draws the palette buttons. A label that cannot be drawn is
// skipped; its button is still filled and outlined.
func (r *Renderer) Toolbar(s Surface, sc Scene) {
	if sc.Origin.Y > 0 && sc.Window.X > 0 {
		s.DrawLine(0, sc.Origin.Y-1, sc.Window.X, sc.Origin.Y-1, Separator)
	}
	for _, e := range sc.Palette {
		s.FillRect(e.Rect, e.Fill)
		s.StrokeRect(e.Rect, Outline)
		if e.Selected(sc.Active) {
			s.StrokeRect(e.Rect.Inset(-3), Marker)
		}
		if e.Label == "" {
			continue
		}
		if err := s.DrawTextCentered(e.Rect, e.Label, LabelColor); err != nil {
			if !r.warned[e.Label] {
				r.warned[e.Label] = true
				r.logger.Warn("toolbar label omitted", "label", e.Label, "err", err)
			}
		}
	}
}

// Replay draws every segment of src onto s, converting from relative to
// absolute coordinates with vp and offsetting by origin. It returns the
// number of segments drawn, which is zero for a degenerate viewport.
func Replay(s Surface, src state.Source, vp geom.Viewport, origin image.Point) int {
	if !vp.Valid() {
		return 0
	}
	n := 0
	src.ForEach(func(seg state.Segment) bool {
		x1, y1, _ := geom.ToAbsolute(seg.X1, seg.Y1, vp)
		x2, y2, _ := geom.ToAbsolute(seg.X2, seg.Y2, vp)
		s.DrawLine(x1+origin.X, y1+origin.Y, x2+origin.X, y2+origin.Y, seg.Color)
		n++
		return true
	})
	return n
}
