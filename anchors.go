package coaster

import "github.com/gogpu/gg"

// Anchors are the four edge midpoints and the centre of one tile.
// Every segment renderer takes its rail endpoints from this set, so two
// segments sharing an edge meet at the same screen point.
type Anchors struct {
	North, East, South, West gg.Point
	Center                   gg.Point
}

// Anchors returns the anchor set of the tile whose top-left screen anchor
// is origin, raised by height units.
func (p Projector) Anchors(origin gg.Point, height float64) Anchors {
	w, h := p.TileWidth, p.TileHeight()
	o := p.Lift(origin, height)
	return Anchors{
		North:  gg.Pt(o.X+0.25*w, o.Y+0.25*h),
		East:   gg.Pt(o.X+0.75*w, o.Y+0.25*h),
		South:  gg.Pt(o.X+0.75*w, o.Y+0.75*h),
		West:   gg.Pt(o.X+0.25*w, o.Y+0.75*h),
		Center: gg.Pt(o.X+0.5*w, o.Y+0.5*h),
	}
}

// Edge returns the midpoint of the tile edge facing d.
func (a Anchors) Edge(d Direction) gg.Point {
	switch d {
	case North:
		return a.North
	case East:
		return a.East
	case South:
		return a.South
	default:
		return a.West
	}
}

// GroundPerp returns the unit vector across a track running along the
// axis of d, measured on the tile plane: east-west for the north/south
// axis, north-south for the east/west axis.
func (a Anchors) GroundPerp(d Direction) gg.Point {
	if d.NorthSouth() {
		return a.East.Sub(a.West).Normalize()
	}
	return a.South.Sub(a.North).Normalize()
}
