package coaster

import (
	"github.com/gogpu/gg"
)

// pen is the complete paint state for one stroke or fill.
type pen struct {
	color gg.RGBA
	width float64
	cap   gg.LineCap
}

// shade returns the pen with its colour blended toward black (k < 0) or
// white (k > 0) by |k|.
func (p pen) shade(k float64) pen {
	if k < 0 {
		p.color = p.color.Lerp(gg.Black, -k)
	} else {
		p.color = p.color.Lerp(gg.White, k)
	}
	return p
}

func (p pen) widen(w float64) pen {
	p.width = w
	return p
}

// painter wraps a Surface and keeps the first paint error, so geometry
// code can issue a sequence of strokes and check once at the end.
type painter struct {
	s   Surface
	err error
}

func (p *painter) apply(pn pen) {
	p.s.SetColor(pn.color.Color())
	p.s.SetLineWidth(pn.width)
	p.s.SetLineCap(pn.cap)
}

func (p *painter) record(err error) {
	if err != nil && p.err == nil {
		Logger().Warn("coaster: surface paint failed", "err", err)
		p.err = err
	}
}

// line strokes a single segment from a to b.
func (p *painter) line(a, b gg.Point, pn pen) {
	p.apply(pn)
	p.s.MoveTo(a.X, a.Y)
	p.s.LineTo(b.X, b.Y)
	p.record(p.s.Stroke())
}

// polyline strokes the open path through pts. closed adds a ClosePath.
func (p *painter) polyline(pts []gg.Point, pn pen, closed bool) {
	if len(pts) < 2 {
		return
	}
	p.apply(pn)
	p.s.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.s.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.s.ClosePath()
	}
	p.record(p.s.Stroke())
}

// polygon fills the closed polygon through pts.
func (p *painter) polygon(pts []gg.Point, pn pen) {
	if len(pts) < 3 {
		return
	}
	p.apply(pn)
	p.s.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.s.LineTo(pt.X, pt.Y)
	}
	p.s.ClosePath()
	p.record(p.s.Fill())
}

// dot fills a circle of radius r at c.
func (p *painter) dot(c gg.Point, r float64, pn pen) {
	p.apply(pn)
	p.s.DrawCircle(c.X, c.Y, r)
	p.record(p.s.Fill())
}

// bevel strokes a to b three times, shadow, body and highlight, offset
// sideways along side to fake lighting on a beam.
func (p *painter) bevel(a, b, side gg.Point, pn pen) {
	off := side.Mul(pn.width * 0.35)
	p.line(a.Add(off), b.Add(off), pn.shade(-0.45).widen(pn.width+1))
	p.line(a, b, pn)
	hi := side.Mul(-pn.width * 0.25)
	p.line(a.Add(hi), b.Add(hi), pn.shade(0.4).widen(pn.width*0.4))
}
