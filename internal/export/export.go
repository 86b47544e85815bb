// Package export writes the canvas to image files.
//
// Exports cover the canvas area only: the toolbar is chrome, not drawing.
package export

import "errors"

var (
	// ErrAllocate means the off-screen target could not be created.
	ErrAllocate = errors.New("export: allocate target")
	// ErrReadback means the rendered pixels could not be read back.
	ErrReadback = errors.New("export: read pixels")
	// ErrEncode means the image could not be encoded or written.
	ErrEncode = errors.New("export: encode")
)
