package coaster

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestProjector_TileHeight(t *testing.T) {
	p := NewProjector()
	if got := p.TileHeight(); math.Abs(got-38.4) > epsilon {
		t.Errorf("TileHeight() = %v, want 38.4", got)
	}
}

func TestProjector_Project(t *testing.T) {
	p := NewProjector()
	tests := []struct {
		name     string
		col, row float64
		want     gg.Point
	}{
		{"origin", 0, 0, gg.Pt(0, 0)},
		{"col step", 1, 0, gg.Pt(32, 19.2)},
		{"row step", 0, 1, gg.Pt(-32, 19.2)},
		{"diagonal", 2, 2, gg.Pt(0, 76.8)},
		{"fractional", 0.5, 0, gg.Pt(16, 9.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Project(tt.col, tt.row); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("Project(%v, %v) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestProjector_HeightMonotonic(t *testing.T) {
	p := NewProjector()
	heights := []float64{-2, -0.5, 0, 0.25, 1, 3, 10}
	for _, c := range []float64{0, 3, -2} {
		for _, r := range []float64{0, 1, 5} {
			for i := 1; i < len(heights); i++ {
				lo := p.ProjectWithHeight(c, r, heights[i-1])
				hi := p.ProjectWithHeight(c, r, heights[i])
				if !(hi.Y < lo.Y) {
					t.Errorf("cell (%v,%v): y(h=%v) = %v not above y(h=%v) = %v",
						c, r, heights[i], hi.Y, heights[i-1], lo.Y)
				}
				if hi.X != lo.X {
					t.Errorf("height changed x: %v vs %v", hi.X, lo.X)
				}
			}
		}
	}
}

func TestProjector_ProjectWithHeight(t *testing.T) {
	p := Projector{TileWidth: 64, HeightUnit: 10}
	got := p.ProjectWithHeight(1, 0, 2.5)
	want := gg.Pt(32, 19.2-25)
	if !pointsEqual(got, want, epsilon) {
		t.Errorf("ProjectWithHeight = %v, want %v", got, want)
	}
}

func TestProjector_Anchors(t *testing.T) {
	p := NewProjector()
	a := p.Anchors(gg.Pt(0, 0), 0)

	tests := []struct {
		name string
		got  gg.Point
		want gg.Point
	}{
		{"north", a.North, gg.Pt(16, 9.6)},
		{"east", a.East, gg.Pt(48, 9.6)},
		{"south", a.South, gg.Pt(48, 28.8)},
		{"west", a.West, gg.Pt(16, 28.8)},
		{"center", a.Center, gg.Pt(32, 19.2)},
	}
	for _, tt := range tests {
		if !pointsEqual(tt.got, tt.want, epsilon) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	lifted := p.Anchors(gg.Pt(10, 20), 2)
	if !pointsEqual(lifted.Center, gg.Pt(42, 39.2-32), epsilon) {
		t.Errorf("lifted centre = %v, want (42, 7.2)", lifted.Center)
	}
	for _, d := range allDirections {
		if !pointsEqual(lifted.Edge(d), p.Lift(p.Anchors(gg.Pt(10, 20), 0).Edge(d), 2), epsilon) {
			t.Errorf("Edge(%v) of lifted anchors differs from lifted edge", d)
		}
	}
}

func TestProjector_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    Projector
		want error
	}{
		{"default", NewProjector(), nil},
		{"zero width", Projector{TileWidth: 0, HeightUnit: 16}, ErrInvalidTile},
		{"negative unit", Projector{TileWidth: 64, HeightUnit: -1}, ErrInvalidTile},
		{"nan width", Projector{TileWidth: math.NaN(), HeightUnit: 16}, ErrNonFinite},
		{"inf unit", Projector{TileWidth: 64, HeightUnit: math.Inf(1)}, ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAnchors_GroundPerp(t *testing.T) {
	a := NewProjector().Anchors(gg.Pt(0, 0), 0)
	for _, d := range allDirections {
		perp := a.GroundPerp(d)
		if math.Abs(perp.Length()-1) > epsilon {
			t.Errorf("GroundPerp(%v) length = %v, want 1", d, perp.Length())
		}
		// The perpendicular runs between the two edges the track does not use.
		side := a.Edge((d + 1) % 4).Sub(a.Edge((d + 3) % 4))
		if math.Abs(perp.Cross(side)) > epsilon {
			t.Errorf("GroundPerp(%v) = %v not parallel to %v", d, perp, side)
		}
	}
}
