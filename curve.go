package coaster

import (
	"math"

	"github.com/gogpu/gg"
)

// Curve evaluation used by turn and loop rendering.
// Points come from gg's Bézier types; tangents and perpendiculars are
// computed here because rail offsets need them at arbitrary parameters.

// QuadPoint evaluates the quadratic Bézier (from, ctrl, to) at t.
// QuadPoint(…, 0) is exactly from and QuadPoint(…, 1) is exactly to.
func QuadPoint(from, ctrl, to gg.Point, t float64) gg.Point {
	return gg.NewQuadBez(from, ctrl, to).Eval(t)
}

// QuadTangent returns the derivative 2(1-t)(ctrl-from) + 2t(to-ctrl).
func QuadTangent(from, ctrl, to gg.Point, t float64) gg.Point {
	mt := 1 - t
	return gg.Point{
		X: 2*mt*(ctrl.X-from.X) + 2*t*(to.X-ctrl.X),
		Y: 2*mt*(ctrl.Y-from.Y) + 2*t*(to.Y-ctrl.Y),
	}
}

// CubicPoint evaluates the cubic Bézier (p0, p1, p2, p3) at t.
func CubicPoint(p0, p1, p2, p3 gg.Point, t float64) gg.Point {
	return gg.NewCubicBez(p0, p1, p2, p3).Eval(t)
}

// CubicTangent returns the derivative of the cubic Bézier at t.
func CubicTangent(p0, p1, p2, p3 gg.Point, t float64) gg.Point {
	return gg.Point(gg.NewCubicBez(p0, p1, p2, p3).Tangent(t))
}

// Perpendicular rotates tangent by 90 degrees and normalizes it:
// (-ty, tx) / |t|. A zero-length (or non-finite) tangent yields fallback.
func Perpendicular(tangent, fallback gg.Point) gg.Point {
	n := tangent.Length()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		Logger().Debug("coaster: degenerate tangent, using fallback perpendicular",
			"tangent", tangent, "fallback", fallback)
		return fallback
	}
	return gg.Point{X: -tangent.Y / n, Y: tangent.X / n}
}

// QuadPerpendicular returns the unit perpendicular of the quadratic at t,
// or fallback where the tangent vanishes.
func QuadPerpendicular(from, ctrl, to gg.Point, t float64, fallback gg.Point) gg.Point {
	return Perpendicular(QuadTangent(from, ctrl, to, t), fallback)
}
