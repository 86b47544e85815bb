package export

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"Drawspace/internal/geom"
	"Drawspace/internal/render"
	"Drawspace/internal/state"
)

// PNG rasterizes segs into a w×h off-screen target of dev and writes it to
// path as a PNG. The device's current target is restored before PNG
// returns, whether or not the export succeeded.
func PNG(dev render.Device, segs state.Source, w, h int, path string) (err error) {
	vp := geom.Viewport{W: w, H: h}
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d canvas", ErrAllocate, w, h)
	}

	target, err := dev.CreateTarget(w, h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocate, err)
	}
	defer target.Release()

	prev := dev.CurrentTarget()
	if err := dev.SetTarget(target); err != nil {
		return fmt.Errorf("%w: %v", ErrAllocate, err)
	}
	defer func() {
		if rerr := dev.SetTarget(prev); rerr != nil && err == nil {
			err = fmt.Errorf("export: restore target: %w", rerr)
		}
	}()

	dev.Clear(render.Background)
	render.Replay(dev, segs, vp, image.Point{})

	img, err := dev.ReadPixels(vp.Rect())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadback, err)
	}
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
