package coaster

import (
	"math"

	"github.com/gogpu/gg"
)

// Loop geometry.
const (
	loopSegments    = 32
	loopMinRadius   = 28.0
	loopRadiusScale = 0.4

	loopColumnWidth = 3.0
	loopBraceHalf   = 6.0
)

// LoopRadius returns the screen radius of a loop of the given height.
func (r *Renderer) LoopRadius(loopHeight float64) float64 {
	return math.Max(loopMinRadius, loopHeight*r.proj.HeightUnit*loopRadiusScale)
}

// LoopPoint returns the centreline point at angle theta of a loop standing
// on the tile centre c in the vertical plane of dir. theta = 0 and 2π sit
// at track level, theta = π is the inverted top.
func LoopPoint(c gg.Point, dir Direction, radius, theta float64) gg.Point {
	fwd := dir.Vector().Mul(math.Sin(theta) * radius)
	return gg.Point{
		X: c.X + fwd.X,
		Y: c.Y + fwd.Y - (1-math.Cos(theta))*radius,
	}
}

// LoopRail returns the closed polyline of one loop rail: loopSegments+1
// points whose last point equals the first. side is -1 or +1.
//
// The rail is offset along the tile-plane perpendicular of dir, not the
// local curve normal, which keeps both rails a constant distance apart on
// screen all the way round.
func (r *Renderer) LoopRail(ox, oy float64, dir Direction, loopHeight, side float64) []gg.Point {
	a := r.proj.Anchors(gg.Pt(ox, oy), 0)
	radius := r.LoopRadius(loopHeight)
	off := a.GroundPerp(dir).Mul(side * r.halfWidth())

	pts := make([]gg.Point, loopSegments+1)
	for k := 0; k < loopSegments; k++ {
		theta := 2 * math.Pi * float64(k) / loopSegments
		pts[k] = LoopPoint(a.Center, dir, radius, theta).Add(off)
	}
	pts[loopSegments] = pts[0]
	return pts
}

// DrawLoopTrack draws a vertical loop heading dir. A level run joins the
// entry and exit edges so the loop attaches to neighbouring segments at the
// usual anchors; the circle itself stands on the tile centre and is held by
// a single braced column.
func (r *Renderer) DrawLoopTrack(s Surface, ox, oy float64, dir Direction, loopHeight float64, opts ...DrawOption) error {
	if err := checkFinite("loop track", ox, oy, loopHeight); err != nil {
		return err
	}
	if err := checkDirection("loop track", dir); err != nil {
		return err
	}
	o := resolveDrawOptions(opts)
	p := &painter{s: s}

	a := r.proj.Anchors(gg.Pt(ox, oy), 0)
	radius := r.LoopRadius(loopHeight)
	r.loopColumn(p, a.Center, 2*radius, o.style)

	from, to := a.Edge(dir.Opposite()), a.Edge(dir)
	perp := a.GroundPerp(dir)
	r.straightTies(p, from, to, perp, o)
	r.straightRails(p, from, to, perp, o)

	rp := o.railPen()
	for _, side := range [2]float64{-1, 1} {
		p.polyline(r.LoopRail(ox, oy, dir, loopHeight, side), rp, true)
	}
	return p.err
}

// loopColumn draws the centre column from base up rise pixels, with three
// horizontal braces for metal and five for wood. Wood also crosses every
// gap between two braces with an X.
func (r *Renderer) loopColumn(p *painter, base gg.Point, rise float64, style StrutStyle) {
	body := strutPen(style).widen(loopColumnWidth)
	top := gg.Pt(base.X, base.Y-rise)
	p.bevel(base, top, gg.Pt(1, 0), body)

	braces := 3
	if style == Wood {
		braces = 5
	}
	bracePen := strutPen(style).widen(1.2)
	level := func(i int) float64 {
		return base.Y - rise*float64(i+1)/float64(braces+1)
	}
	for i := 0; i < braces; i++ {
		y := level(i)
		p.line(gg.Pt(base.X-loopBraceHalf, y), gg.Pt(base.X+loopBraceHalf, y), bracePen)
	}
	if style != Wood {
		return
	}
	diag := bracePen.widen(0.9)
	for i := 0; i < braces-1; i++ {
		y0, y1 := level(i), level(i+1)
		p.line(gg.Pt(base.X-loopBraceHalf, y0), gg.Pt(base.X+loopBraceHalf, y1), diag)
		p.line(gg.Pt(base.X+loopBraceHalf, y0), gg.Pt(base.X-loopBraceHalf, y1), diag)
	}
}
