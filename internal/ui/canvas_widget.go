package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Drawspace/internal/board"
	"Drawspace/internal/render"
	"Drawspace/internal/tools"
)

// CanvasWidget covers the whole window. It forwards pointer and size
// changes to the controller and redraws after every event.
type CanvasWidget struct {
	widget.BaseWidget
	ctrl     *board.Controller
	renderer *render.Renderer
	dev      *fyneDevice

	// OnQuit is called once the controller has terminated.
	OnQuit func()
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)

func NewCanvasWidget(ctrl *board.Controller, r *render.Renderer, dev *fyneDevice) *CanvasWidget {
	w := &CanvasWidget{ctrl: ctrl, renderer: r, dev: dev}
	w.ExtendBaseWidget(w)
	return w
}

func (w *CanvasWidget) dispatch(ev board.Event) {
	running := w.ctrl.Handle(ev)
	w.Refresh()
	if !running && w.OnQuit != nil {
		w.OnQuit()
	}
}

func mouseButton(b desktop.MouseButton) board.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return board.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return board.ButtonTertiary
	}
	return board.ButtonPrimary
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	w.dispatch(board.PointerDown{
		X:      int(e.Position.X),
		Y:      int(e.Position.Y),
		Button: mouseButton(e.Button),
	})
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	w.dispatch(board.PointerUp{Button: mouseButton(e.Button)})
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	w.dispatch(board.PointerMove{X: int(e.Position.X), Y: int(e.Position.Y)})
}

func (w *CanvasWidget) DragEnd() {
	w.dispatch(board.PointerUp{Button: board.ButtonPrimary})
}

func (w *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	if w.ctrl.Mode() == board.Dragging {
		w.dispatch(board.PointerMove{X: int(e.Position.X), Y: int(e.Position.Y)})
	}
}

func (w *CanvasWidget) MouseIn(*desktop.MouseEvent) {}
func (w *CanvasWidget) MouseOut()                   {}

// Quit terminates the controller and redraws one last time.
func (w *CanvasWidget) Quit() {
	w.dispatch(board.Quit{})
}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{w: w}
}

type canvasRenderer struct {
	w       *CanvasWidget
	objects []fyne.CanvasObject
	size    fyne.Size
}

func (r *canvasRenderer) draw() {
	r.w.dev.begin(r.size)
	r.w.renderer.Frame(r.w.dev, r.w.ctrl.Scene())
	r.objects = r.w.dev.objects
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	if size != r.size {
		r.size = size
		r.w.ctrl.Handle(board.Resize{W: int(size.Width), H: int(size.Height)})
	}
	r.draw()
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(440, tools.ToolbarHeight+1)
}

func (r *canvasRenderer) Refresh() {
	r.draw()
	canvas.Refresh(r.w)
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Destroy() {}
