package coaster

import (
	"math"

	"github.com/gogpu/gg"
)

// Support geometry in pixels.
const (
	strutSpacing = 6.0  // half the distance between the two columns
	strutWidth   = 2.0  // column stroke width
	woodLean     = 0.15 // inward lean of timber columns at the top, fraction of spacing
)

var (
	metalColor = gg.Hex("#7A828C")
	woodColor  = gg.Hex("#8B5A2B")
)

func strutPen(style StrutStyle) pen {
	c := metalColor
	if style == Wood {
		c = woodColor
	}
	return pen{color: c, width: strutWidth, cap: gg.LineCapButt}
}

// strut draws one support tower. base is the ground point between the two
// columns, rise the tower height in pixels, height the same in height
// units, side the unit vector the columns are spread along.
type strut interface {
	paint(p *painter, base gg.Point, rise, height float64, side gg.Point)
}

func strutFor(style StrutStyle) strut {
	if style == Wood {
		return woodStrut{}
	}
	return metalStrut{}
}

// DrawSupport draws a support tower standing at (anchorX, groundY) and
// reaching height units up. lean is the direction the two columns are
// spread along; nil or zero means horizontal. A non-positive height draws
// nothing.
func (r *Renderer) DrawSupport(s Surface, anchorX, groundY, height float64, lean *gg.Point, style StrutStyle) error {
	if height <= 0 {
		return nil
	}
	if err := checkFinite("support", anchorX, groundY, height); err != nil {
		return err
	}
	side := gg.Pt(1, 0)
	if lean != nil {
		side = *lean
	}
	p := &painter{s: s}
	r.support(p, gg.Pt(anchorX, groundY), height, side, style)
	return p.err
}

func (r *Renderer) support(p *painter, base gg.Point, height float64, side gg.Point, style StrutStyle) {
	if height <= 0 {
		Logger().Debug("coaster: support skipped at ground level", "height", height)
		return
	}
	side = side.Normalize()
	if side.LengthSquared() == 0 {
		side = gg.Pt(1, 0)
	}
	strutFor(style).paint(p, base, height*r.proj.HeightUnit, height, side)
}

// metalStrut is a steel lattice: straight columns, horizontal braces every
// 1.5 units with K bracing up to the next brace, rivets, base plates.
type metalStrut struct{}

func (metalStrut) paint(p *painter, base gg.Point, rise, height float64, side gg.Point) {
	body := strutPen(Metal)
	off := side.Mul(strutSpacing)
	up := gg.Pt(0, -rise)
	left, right := base.Sub(off), base.Add(off)

	plate := body.shade(-0.3)
	for _, c := range [2]gg.Point{left, right} {
		p.polygon([]gg.Point{
			gg.Pt(c.X, c.Y-2), gg.Pt(c.X+3, c.Y),
			gg.Pt(c.X, c.Y+2), gg.Pt(c.X-3, c.Y),
		}, plate)
	}
	p.bevel(left, left.Add(up), side, body)
	p.bevel(right, right.Add(up), side, body)

	n := max(1, int(math.Floor(height/1.5)))
	at := func(c gg.Point, i int) gg.Point {
		return gg.Pt(c.X, c.Y-rise*float64(i+1)/float64(n+1))
	}
	brace := body.widen(1.2)
	kbrace := body.shade(-0.15).widen(0.9)
	rivet := body.shade(0.5)
	for i := 0; i < n; i++ {
		l, r := at(left, i), at(right, i)
		p.line(l, r, brace)
		if i < n-1 {
			mid := at(left, i+1).Lerp(at(right, i+1), 0.5)
			p.line(l, mid, kbrace)
			p.line(r, mid, kbrace)
		}
		p.dot(l, 0.9, rivet)
		p.dot(r, 0.9, rivet)
	}

	p.bevel(left.Add(up), right.Add(up), gg.Pt(0, 1), body.widen(2.5))
}

// woodStrut is a timber frame: columns leaning slightly inward, a ledger
// and an X brace per section, foundation blocks.
type woodStrut struct{}

func (woodStrut) paint(p *painter, base gg.Point, rise, height float64, side gg.Point) {
	body := strutPen(Wood)
	// col returns the column point at fraction f of the rise; sign picks the column.
	col := func(sign, f float64) gg.Point {
		spread := strutSpacing * (1 - woodLean*f)
		return base.Add(side.Mul(sign * spread)).Add(gg.Pt(0, -rise*f))
	}

	block := body.shade(-0.35)
	for _, sign := range [2]float64{-1, 1} {
		c := col(sign, 0)
		p.polygon([]gg.Point{
			gg.Pt(c.X-3, c.Y-1.5), gg.Pt(c.X+3, c.Y-1.5),
			gg.Pt(c.X+3, c.Y+1.5), gg.Pt(c.X-3, c.Y+1.5),
		}, block)
	}
	p.bevel(col(-1, 0), col(-1, 1), side, body)
	p.bevel(col(1, 0), col(1, 1), side, body)

	n := max(2, int(math.Ceil(height*1.5)))
	ledger := body.widen(1.4)
	cross := body.shade(-0.2).widen(1)
	for j := 0; j < n; j++ {
		f0, f1 := float64(j)/float64(n), float64(j+1)/float64(n)
		if j > 0 {
			p.line(col(-1, f0), col(1, f0), ledger)
		}
		p.line(col(-1, f0), col(1, f1), cross)
		p.line(col(1, f0), col(-1, f1), cross)
	}

	p.bevel(col(-1, 1), col(1, 1), gg.Pt(0, 1), body.widen(2.5))
}
