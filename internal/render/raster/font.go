package raster

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// LabelSize is the point size toolbar labels are drawn at.
const LabelSize = 16

// LoadFace loads the font file at path. When path is empty or cannot be
// read, the embedded Go Bold font is used instead.
func LoadFace(path string, size float64) (text.Face, error) {
	if path != "" {
		if src, err := text.NewFontSourceFromFile(path); err == nil {
			return src.Face(size), nil
		}
	}
	src, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
