package coaster

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Surface is the immediate-mode drawing target the renderers paint into.
// Its method set is a subset of *gg.Context, so a gg context can be passed
// directly. Stroke and Fill consume the current path.
//
// Renderers never read state back from a Surface and set colour, line
// width and line cap before every stroke or fill.
type Surface interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	DrawCircle(x, y, r float64)

	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)

	Stroke() error
	Fill() error
}

var _ Surface = (*gg.Context)(nil)
