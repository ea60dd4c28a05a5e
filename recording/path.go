package recording

import (
	"github.com/gogpu/gg"
)

// Subpath is one MoveTo-started run of points.
type Subpath struct {
	Points []gg.Point
	Closed bool
}

// PaintedPath is a path as it was stroked or filled, together with the
// paint state in effect at that moment.
type PaintedPath struct {
	// Op is CmdStroke or CmdFill.
	Op CommandType

	Subpaths []Subpath
	Circles  []CircleCommand

	Color     gg.RGBA
	LineWidth float64
	LineCap   gg.LineCap

	// ColorSet, WidthSet and CapSet report whether the state was set
	// explicitly since the previous paint, rather than inherited.
	ColorSet, WidthSet, CapSet bool
}

// Points returns the points of the first subpath, or nil.
func (p PaintedPath) Points() []gg.Point {
	if len(p.Subpaths) == 0 {
		return nil
	}
	return p.Subpaths[0].Points
}

// Paths reconstructs every stroked or filled path in recording order.
// A path cleared with ClearPath is dropped.
func (r *Recording) Paths() []PaintedPath {
	var (
		out   []PaintedPath
		state PaintedPath
		cur   PaintedPath
	)
	last := func() *Subpath {
		if len(cur.Subpaths) == 0 {
			return nil
		}
		return &cur.Subpaths[len(cur.Subpaths)-1]
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case MoveToCommand:
			cur.Subpaths = append(cur.Subpaths, Subpath{Points: []gg.Point{gg.Pt(c.X, c.Y)}})
		case LineToCommand:
			sp := last()
			if sp == nil || sp.Closed {
				cur.Subpaths = append(cur.Subpaths, Subpath{})
				sp = last()
			}
			sp.Points = append(sp.Points, gg.Pt(c.X, c.Y))
		case ClosePathCommand:
			if sp := last(); sp != nil {
				sp.Closed = true
			}
		case CircleCommand:
			cur.Circles = append(cur.Circles, c)
		case ClearPathCommand:
			cur = PaintedPath{}
		case SetColorCommand:
			state.Color, state.ColorSet = c.Color, true
		case SetLineWidthCommand:
			state.LineWidth, state.WidthSet = c.Width, true
		case SetLineCapCommand:
			state.LineCap, state.CapSet = c.Cap, true
		case StrokeCommand, FillCommand:
			p := state
			p.Op = cmd.Type()
			p.Subpaths = cur.Subpaths
			p.Circles = cur.Circles
			out = append(out, p)
			cur = PaintedPath{}
			state.ColorSet, state.WidthSet, state.CapSet = false, false, false
		}
	}
	return out
}
