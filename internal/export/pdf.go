package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"Drawspace/internal/state"
)

// PDF writes segs as vector lines on a single w×h point page.
func PDF(segs state.Source, w, h int, path string) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d canvas", ErrAllocate, w, h)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineWidth(1)
	p.SetLineCapStyle("round")

	fw, fh := float64(w), float64(h)
	segs.ForEach(func(s state.Segment) bool {
		p.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
		p.SetAlpha(float64(s.Color.A)/255, "Normal")
		p.Line(s.X1*fw, s.Y1*fh, s.X2*fw, s.Y2*fh)
		return true
	})

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
