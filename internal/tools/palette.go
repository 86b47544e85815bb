// Package tools defines the toolbar: its height, its buttons and what
// pressing each of them does.
package tools

import (
	"fmt"
	"image"
	"image/color"
)

// ToolbarHeight is the height of the strip along the top of the window
// that holds the palette. The canvas starts right below it.
const ToolbarHeight = 50

const (
	PNGPath = "drawing.png"
	PDFPath = "drawing.pdf"
)

// Format selects the encoder used by an Export action.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatPDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Action is what a palette button does. The set of implementations is
// closed: SelectColor, Clear and Export.
type Action interface {
	isAction()
}

// SelectColor makes Color the color of subsequent strokes.
type SelectColor struct {
	Color color.NRGBA
}

// Clear discards every stroke on the canvas.
type Clear struct{}

// Export writes the canvas to Path.
type Export struct {
	Format Format
	Path   string
}

func (SelectColor) isAction() {}
func (Clear) isAction()       {}
func (Export) isAction()      {}

// Entry is one toolbar button.
type Entry struct {
	Rect   image.Rectangle
	Fill   color.NRGBA
	Label  string
	Action Action
}

// Palette is the ordered set of toolbar buttons.
type Palette []Entry

// HitTest returns the first entry whose rectangle contains (x, y).
// Earlier entries win where rectangles overlap.
func (p Palette) HitTest(x, y int) (Entry, bool) {
	pt := image.Pt(x, y)
	for _, e := range p {
		if pt.In(e.Rect) {
			return e, true
		}
	}
	return Entry{}, false
}

// Selected reports whether e is the swatch for the active color.
func (e Entry) Selected(active color.NRGBA) bool {
	sc, ok := e.Action.(SelectColor)
	return ok && sc.Color == active
}

var (
	Black  = color.NRGBA{A: 255}
	Red    = color.NRGBA{R: 255, A: 255}
	Green  = color.NRGBA{G: 255, A: 255}
	Blue   = color.NRGBA{B: 255, A: 255}
	White  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Gray   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	Olive  = color.NRGBA{R: 200, G: 200, A: 255}
	Violet = color.NRGBA{R: 170, G: 150, B: 230, A: 255}
)

func swatch(x int, c color.NRGBA) Entry {
	return Entry{
		Rect:   image.Rect(x, 10, x+30, 40),
		Fill:   c,
		Action: SelectColor{Color: c},
	}
}

func command(x int, fill color.NRGBA, label string, a Action) Entry {
	return Entry{
		Rect:   image.Rect(x, 10, x+80, 40),
		Fill:   fill,
		Label:  label,
		Action: a,
	}
}

// Default returns the stock toolbar: four color swatches followed by the
// Clear, Save and PDF commands.
func Default() Palette {
	return Palette{
		swatch(10, Black),
		swatch(50, Red),
		swatch(90, Green),
		swatch(130, Blue),
		command(170, Gray, "Clear", Clear{}),
		command(260, Olive, "Save", Export{Format: FormatPNG, Path: PNGPath}),
		command(350, Violet, "PDF", Export{Format: FormatPDF, Path: PDFPath}),
	}
}
