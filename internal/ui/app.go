// Package ui is the fyne front end: the window, the full-window canvas
// widget and the fyne implementation of the render device.
package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"Drawspace/internal/board"
	"Drawspace/internal/render"
	"Drawspace/internal/render/raster"
	"Drawspace/internal/tools"
)

const (
	Title        = "Drawspace"
	WindowWidth  = 800
	WindowHeight = 600
	FontPath     = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

var (
	// ErrInit is returned by Run when the window or fonts could not be set up.
	ErrInit           = errors.New("ui: initialization failed")
	errScreenReadback = errors.New("ui: window pixels cannot be read back")
)

// Run opens the window and blocks until it is closed.
func Run(logger *log.Logger) error {
	face, err := raster.LoadFace(FontPath, raster.LabelSize)
	if err != nil {
		return fmt.Errorf("%w: load font: %v", ErrInit, err)
	}

	a, w, err := openWindow()
	if err != nil {
		return err
	}

	dev := newFyneDevice(face)
	ctrl := board.New(WindowWidth, WindowHeight, dev, board.WithLogger(logger))
	ctrl.OnExport = func(e tools.Export, err error) {
		if err != nil {
			w.SetTitle(fmt.Sprintf("%s - export failed", Title))
			return
		}
		w.SetTitle(fmt.Sprintf("%s - saved %s", Title, e.Path))
	}
	ctrl.OnClear = func() { w.SetTitle(Title) }

	cw := NewCanvasWidget(ctrl, render.New(logger), dev)
	cw.OnQuit = w.Close
	w.SetCloseIntercept(cw.Quit)
	w.SetOnClosed(func() {
		logger.Info("window closed")
		a.Quit()
	})

	w.SetContent(cw)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	logger.Info("starting", "width", WindowWidth, "height", WindowHeight, "toolbar", tools.ToolbarHeight)
	w.ShowAndRun()
	return nil
}

// openWindow creates the app and its window. fyne reports a missing
// display or GL driver by panicking, which is turned into ErrInit here.
func openWindow() (a fyne.App, w fyne.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInit, r)
		}
	}()
	a = app.NewWithID("io.drawspace")
	w = a.NewWindow(Title)
	w.SetPadded(false)
	return a, w, nil
}
