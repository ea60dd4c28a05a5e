package coaster

import "github.com/gogpu/gg"

// DrawSlopeTrack draws a straight ramp heading dir that climbs (or drops)
// from startHeight at the entry edge to endHeight at the exit edge.
//
// Ties are laid along the tile-plane perpendicular rather than one tilted
// into the slope, so they stay parallel to the grid on any gradient.
// Each end that sits above ground gets its own support.
func (r *Renderer) DrawSlopeTrack(s Surface, ox, oy float64, dir Direction, startHeight, endHeight float64, opts ...DrawOption) error {
	if err := checkFinite("slope track", ox, oy, startHeight, endHeight); err != nil {
		return err
	}
	if err := checkDirection("slope track", dir); err != nil {
		return err
	}
	o := resolveDrawOptions(opts)
	p := &painter{s: s}

	ground := r.proj.Anchors(gg.Pt(ox, oy), 0)
	lowEdge, highEdge := ground.Edge(dir.Opposite()), ground.Edge(dir)
	from := r.proj.Lift(lowEdge, startHeight)
	to := r.proj.Lift(highEdge, endHeight)
	perp := ground.GroundPerp(dir)

	r.support(p, lowEdge, startHeight, perp, o.style)
	r.support(p, highEdge, endHeight, perp, o.style)

	r.straightTies(p, from, to, perp, o)
	r.straightRails(p, from, to, perp, o)
	return p.err
}
