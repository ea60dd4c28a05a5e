package coaster

import (
	"github.com/gogpu/gg"
)

// Stroke widths shared by the segment renderers.
const (
	railWidth   = 2.0
	tieWidth    = 2.5
	tieOverhang = 1.5 // tie half-length as a multiple of the rail half-gauge
)

func (o drawOptions) railPen() pen {
	return pen{color: o.track, width: railWidth, cap: gg.LineCapRound}
}

func (o drawOptions) tiePen() pen {
	c := tieColorMetal
	if o.style == Wood {
		c = tieColorWood
	}
	return pen{color: c, width: tieWidth, cap: gg.LineCapButt}
}

var (
	tieColorMetal = gg.Hex("#5A5F66")
	tieColorWood  = gg.Hex("#6B4A2E")
)

// tie strokes one crosstie centred on c across the track along perp.
func (r *Renderer) tie(p *painter, c, perp gg.Point, pn pen) {
	d := perp.Mul(r.halfWidth() * tieOverhang)
	p.line(c.Sub(d), c.Add(d), pn)
}

// straightTies places max(3, len/spacing) ties evenly along from→to.
func (r *Renderer) straightTies(p *painter, from, to, perp gg.Point, o drawOptions) {
	n := r.tieCount(from.Distance(to))
	pn := o.tiePen()
	for i := 0; i < n; i++ {
		r.tie(p, from.Lerp(to, (float64(i)+0.5)/float64(n)), perp, pn)
	}
}

// straightRails strokes the two rails of from→to, offset ±half gauge along perp.
func (r *Renderer) straightRails(p *painter, from, to, perp gg.Point, o drawOptions) {
	pn := o.railPen()
	for _, side := range [2]float64{-1, 1} {
		off := perp.Mul(side * r.halfWidth())
		p.line(from.Add(off), to.Add(off), pn)
	}
}

// groundOf returns the screen point directly below pt at height zero.
func (r *Renderer) groundOf(pt gg.Point, height float64) gg.Point {
	return gg.Point{X: pt.X, Y: pt.Y + height*r.proj.HeightUnit}
}
