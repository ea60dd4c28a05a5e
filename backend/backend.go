package backend

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/coaster"
	"github.com/gogpu/gg"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrInvalidSize is returned for a canvas with a non-positive dimension.
	ErrInvalidSize = errors.New("backend: invalid canvas size")
)

// Canvas is a coaster.Surface that can be encoded as a PNG image once
// drawing is done.
type Canvas interface {
	coaster.Surface

	// EncodePNG writes the finished image to w.
	EncodePNG(w io.Writer) error

	// Close releases the canvas. It must not be used afterwards.
	Close() error
}

// Labeler is implemented by canvases that can draw text.
type Labeler interface {
	// Label draws s centred on (x, y) in colour c.
	Label(s string, x, y float64, c gg.RGBA) error
}

// Backend creates canvases of one kind.
//
// Backends are registered via Register() and selected via Get() or
// Default().
type Backend interface {
	// Name returns the backend identifier (e.g. "software", "recording").
	Name() string

	// NewCanvas creates a canvas of the given size cleared to background.
	NewCanvas(width, height int, background gg.RGBA) (Canvas, error)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}
