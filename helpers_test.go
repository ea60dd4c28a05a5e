package coaster

import (
	"math"
	"testing"

	"github.com/gogpu/coaster/recording"
	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 gg.Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	return r
}

// record runs draw against a fresh Recorder and returns what it captured.
func record(t *testing.T, draw func(s Surface) error) *recording.Recording {
	t.Helper()
	rec := recording.NewRecorder()
	if err := draw(rec); err != nil {
		t.Fatalf("draw = %v", err)
	}
	return rec.Finish()
}

func strokes(paths []recording.PaintedPath) []recording.PaintedPath {
	var out []recording.PaintedPath
	for _, p := range paths {
		if p.Op == recording.CmdStroke {
			out = append(out, p)
		}
	}
	return out
}

// assertExplicitState fails if any paint relied on state set for an
// earlier paint.
func assertExplicitState(t *testing.T, paths []recording.PaintedPath) {
	t.Helper()
	for i, p := range paths {
		if !p.ColorSet || !p.WidthSet || !p.CapSet {
			t.Errorf("paint %d (%v) did not set colour, width and cap", i, p.Op)
		}
	}
}

// colorsClose compares colours after the 8-bit round trip through
// color.Color.
func colorsClose(a, b gg.RGBA) bool {
	const tol = 1.5 / 255
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol && math.Abs(a.A-b.A) < tol
}

var allDirections = []Direction{North, East, South, West}
