package coaster

import "github.com/gogpu/gg"

// Turn sampling.
const (
	curveTies     = 4
	curveSegments = 16
)

// DrawCurvedTrack draws a quarter turn entering through edge entry. The
// exit edge is entry.Turn(turnRight). The centreline is a quadratic Bézier
// with the tile centre as control point, so it leaves both edge midpoints
// along the same line a straight segment would.
func (r *Renderer) DrawCurvedTrack(s Surface, ox, oy float64, entry Direction, turnRight bool, height float64, opts ...DrawOption) error {
	if err := checkFinite("curved track", ox, oy, height); err != nil {
		return err
	}
	if err := checkDirection("curved track", entry); err != nil {
		return err
	}
	o := resolveDrawOptions(opts)
	p := &painter{s: s}

	a := r.proj.Anchors(gg.Pt(ox, oy), height)
	from, ctrl, to := a.Edge(entry), a.Center, a.Edge(entry.Turn(turnRight))
	fallback := a.GroundPerp(entry)
	perpAt := func(t float64) gg.Point {
		return QuadPerpendicular(from, ctrl, to, t, fallback)
	}

	if height > 0 {
		mid := QuadPoint(from, ctrl, to, 0.5)
		r.support(p, r.groundOf(mid, height), height, perpAt(0.5), o.style)
	}

	tp := o.tiePen()
	for i := 0; i < curveTies; i++ {
		t := (float64(i) + 0.5) / curveTies
		r.tie(p, QuadPoint(from, ctrl, to, t), perpAt(t), tp)
	}

	rp := o.railPen()
	for _, side := range [2]float64{-1, 1} {
		pts := make([]gg.Point, curveSegments+1)
		for k := range pts {
			t := float64(k) / curveSegments
			pts[k] = QuadPoint(from, ctrl, to, t).Add(perpAt(t).Mul(side * r.halfWidth()))
		}
		p.polyline(pts, rp, false)
	}
	return p.err
}
