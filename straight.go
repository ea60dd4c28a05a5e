package coaster

import "github.com/gogpu/gg"

// DrawStraightTrack draws a level straight heading dir on the tile whose
// origin is (ox, oy). The rails run from the edge opposite dir to the edge
// facing dir. An elevated straight gets one support under its midpoint.
func (r *Renderer) DrawStraightTrack(s Surface, ox, oy float64, dir Direction, height float64, opts ...DrawOption) error {
	if err := checkFinite("straight track", ox, oy, height); err != nil {
		return err
	}
	if err := checkDirection("straight track", dir); err != nil {
		return err
	}
	o := resolveDrawOptions(opts)
	p := &painter{s: s}

	a := r.proj.Anchors(gg.Pt(ox, oy), height)
	from, to := a.Edge(dir.Opposite()), a.Edge(dir)
	perp := a.GroundPerp(dir)

	if height > 0 {
		mid := from.Lerp(to, 0.5)
		r.support(p, r.groundOf(mid, height), height, perp, o.style)
	}
	r.straightTies(p, from, to, perp, o)
	r.straightRails(p, from, to, perp, o)
	return p.err
}
