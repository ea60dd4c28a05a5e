package coaster

import (
	"math"

	"github.com/gogpu/gg"
)

// Chain-lift geometry.
const (
	// LinkSpacing is the distance between chain links; the animation phase
	// repeats every LinkSpacing ticks.
	LinkSpacing = 4.0

	chainSpan  = 0.7 // chain length as a fraction of the tile width
	linkRadius = 1.2
)

var (
	chainColor = gg.Hex("#2E3135")
	linkColor  = gg.Hex("#B8BCC2")
)

// chainRun returns the ground-level start of the chain on the tile with
// origin (ox, oy), its unit heading and its length.
func (r *Renderer) chainRun(ox, oy float64, dir Direction) (start, v gg.Point, length float64) {
	c := r.proj.Anchors(gg.Pt(ox, oy), 0).Center
	length = chainSpan * r.proj.TileWidth
	v = dir.Vector()
	return c.Sub(v.Mul(length / 2)), v, length
}

// ChainLinks returns the link positions of a chain lift for the given tick.
// Links sit every LinkSpacing pixels along the tile-plane run, shifted by
// tick modulo LinkSpacing; elevation is interpolated from startHeight to
// endHeight. The result depends only on its arguments.
func (r *Renderer) ChainLinks(ox, oy float64, dir Direction, startHeight, endHeight, tick float64) []gg.Point {
	start, v, length := r.chainRun(ox, oy, dir)

	phase := math.Mod(tick, LinkSpacing)
	if phase < 0 {
		phase += LinkSpacing
	}

	var links []gg.Point
	for k := 0; ; k++ {
		d := phase + float64(k)*LinkSpacing
		if d > length {
			break
		}
		f := d / length
		h := startHeight + (endHeight-startHeight)*f
		links = append(links, r.proj.Lift(start.Add(v.Mul(d)), h))
	}
	return links
}

// DrawChainLift draws the chain overlay of a lift segment heading dir.
// Redrawing with an increasing tick scrolls the links along the track.
func (r *Renderer) DrawChainLift(s Surface, ox, oy float64, dir Direction, startHeight, endHeight, tick float64) error {
	if err := checkFinite("chain lift", ox, oy, startHeight, endHeight, tick); err != nil {
		return err
	}
	if err := checkDirection("chain lift", dir); err != nil {
		return err
	}
	p := &painter{s: s}

	start, v, length := r.chainRun(ox, oy, dir)
	from := r.proj.Lift(start, startHeight)
	to := r.proj.Lift(start.Add(v.Mul(length)), endHeight)
	p.line(from, to, pen{color: chainColor, width: 1.5, cap: gg.LineCapRound})

	lp := pen{color: linkColor, width: 1, cap: gg.LineCapRound}
	for _, l := range r.ChainLinks(ox, oy, dir, startHeight, endHeight, tick) {
		p.dot(l, linkRadius, lp)
	}
	return p.err
}
