package ebiten

import "github.com/gogpu/gg"

type subpath struct {
	pts    []gg.Point
	closed bool
}

type circle struct {
	c gg.Point
	r float64
}

// segment is one straight stroke piece.
type segment struct {
	a, b gg.Point
}

// pathBuffer collects the current path between paints.
type pathBuffer struct {
	subs    []subpath
	circles []circle
}

func (p *pathBuffer) moveTo(pt gg.Point) {
	p.subs = append(p.subs, subpath{pts: []gg.Point{pt}})
}

// lineTo extends the current subpath. With no open subpath it starts a new
// one at pt, matching gg.Context.
func (p *pathBuffer) lineTo(pt gg.Point) {
	if n := len(p.subs); n == 0 || p.subs[n-1].closed {
		p.moveTo(pt)
		return
	}
	last := &p.subs[len(p.subs)-1]
	last.pts = append(last.pts, pt)
}

func (p *pathBuffer) closePath() {
	if n := len(p.subs); n > 0 {
		p.subs[n-1].closed = true
	}
}

func (p *pathBuffer) circle(c gg.Point, r float64) {
	p.circles = append(p.circles, circle{c: c, r: r})
}

func (p *pathBuffer) reset() {
	p.subs = p.subs[:0]
	p.circles = p.circles[:0]
}

func (p *pathBuffer) empty() bool {
	return len(p.subs) == 0 && len(p.circles) == 0
}

// segments returns every stroke piece of the buffered subpaths. Closed
// subpaths get their closing edge; open ones have both ends pushed outward
// by extend (half the width for square caps).
func (p *pathBuffer) segments(extend float64) []segment {
	var out []segment
	for _, sp := range p.subs {
		n := len(sp.pts)
		if n < 2 {
			continue
		}
		start := len(out)
		for i := 1; i < n; i++ {
			if sp.pts[i] != sp.pts[i-1] {
				out = append(out, segment{sp.pts[i-1], sp.pts[i]})
			}
		}
		if sp.closed {
			if sp.pts[n-1] != sp.pts[0] {
				out = append(out, segment{sp.pts[n-1], sp.pts[0]})
			}
			continue
		}
		if extend == 0 || len(out) == start {
			continue
		}
		first, last := &out[start], &out[len(out)-1]
		first.a = first.a.Sub(first.b.Sub(first.a).Normalize().Mul(extend))
		last.b = last.b.Add(last.b.Sub(last.a).Normalize().Mul(extend))
	}
	return out
}

// vertices returns the points where round joins and caps are drawn.
func (p *pathBuffer) vertices() []gg.Point {
	var out []gg.Point
	for _, sp := range p.subs {
		if len(sp.pts) < 2 {
			continue
		}
		out = append(out, sp.pts...)
	}
	return out
}

// polygons returns the subpaths that enclose an area.
func (p *pathBuffer) polygons() [][]gg.Point {
	var out [][]gg.Point
	for _, sp := range p.subs {
		if len(sp.pts) >= 3 {
			out = append(out, sp.pts)
		}
	}
	return out
}
