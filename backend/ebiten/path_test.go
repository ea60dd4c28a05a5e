package ebiten

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func segmentsEqual(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].a.Distance(b[i].a) > 1e-9 || a[i].b.Distance(b[i].b) > 1e-9 {
			return false
		}
	}
	return true
}

func TestPathBufferSegments(t *testing.T) {
	tests := []struct {
		name   string
		build  func(p *pathBuffer)
		extend float64
		want   []segment
	}{
		{
			name: "single line",
			build: func(p *pathBuffer) {
				p.moveTo(gg.Pt(0, 0))
				p.lineTo(gg.Pt(10, 0))
			},
			want: []segment{{gg.Pt(0, 0), gg.Pt(10, 0)}},
		},
		{
			name: "closed triangle",
			build: func(p *pathBuffer) {
				p.moveTo(gg.Pt(0, 0))
				p.lineTo(gg.Pt(10, 0))
				p.lineTo(gg.Pt(0, 10))
				p.closePath()
			},
			want: []segment{
				{gg.Pt(0, 0), gg.Pt(10, 0)},
				{gg.Pt(10, 0), gg.Pt(0, 10)},
				{gg.Pt(0, 10), gg.Pt(0, 0)},
			},
		},
		{
			name: "closed with repeated first point",
			build: func(p *pathBuffer) {
				p.moveTo(gg.Pt(0, 0))
				p.lineTo(gg.Pt(10, 0))
				p.lineTo(gg.Pt(0, 0))
				p.closePath()
			},
			want: []segment{
				{gg.Pt(0, 0), gg.Pt(10, 0)},
				{gg.Pt(10, 0), gg.Pt(0, 0)},
			},
		},
		{
			name: "square caps extend open ends",
			build: func(p *pathBuffer) {
				p.moveTo(gg.Pt(0, 0))
				p.lineTo(gg.Pt(10, 0))
				p.lineTo(gg.Pt(10, 10))
			},
			extend: 2,
			want: []segment{
				{gg.Pt(-2, 0), gg.Pt(10, 0)},
				{gg.Pt(10, 0), gg.Pt(10, 12)},
			},
		},
		{
			name: "lone move ignored",
			build: func(p *pathBuffer) {
				p.moveTo(gg.Pt(5, 5))
				p.moveTo(gg.Pt(0, 0))
				p.lineTo(gg.Pt(0, 3))
			},
			want: []segment{{gg.Pt(0, 0), gg.Pt(0, 3)}},
		},
		{
			name: "line without move starts a subpath",
			build: func(p *pathBuffer) {
				p.lineTo(gg.Pt(1, 1))
				p.lineTo(gg.Pt(2, 2))
			},
			want: []segment{{gg.Pt(1, 1), gg.Pt(2, 2)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pathBuffer
			tt.build(&p)
			if got := p.segments(tt.extend); !segmentsEqual(got, tt.want) {
				t.Errorf("segments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathBufferPolygonsAndReset(t *testing.T) {
	var p pathBuffer
	p.moveTo(gg.Pt(0, 0))
	p.lineTo(gg.Pt(4, 0))
	p.lineTo(gg.Pt(4, 4))
	p.closePath()
	p.moveTo(gg.Pt(9, 9))
	p.lineTo(gg.Pt(10, 10))
	p.circle(gg.Pt(3, 3), 1.5)

	if got := len(p.polygons()); got != 1 {
		t.Errorf("polygons = %d, want 1", got)
	}
	if got := len(p.vertices()); got != 5 {
		t.Errorf("vertices = %d, want 5", got)
	}
	if p.empty() {
		t.Error("empty() = true with buffered path")
	}
	p.reset()
	if !p.empty() {
		t.Error("empty() = false after reset")
	}
}

func TestTint(t *testing.T) {
	vs := []ebiten.Vertex{{SrcX: 3, SrcY: 4}, {}}
	tint(vs, gg.RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1})
	for i, v := range vs {
		if v.SrcX != 0 || v.SrcY != 0 {
			t.Errorf("vertex %d source = (%v, %v), want (0, 0)", i, v.SrcX, v.SrcY)
		}
		if math.Abs(float64(v.ColorG)-0.5) > 1e-6 || v.ColorA != 1 {
			t.Errorf("vertex %d colour = %v %v %v %v", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestSurfaceWithoutTarget(t *testing.T) {
	s := New(nil)
	s.MoveTo(0, 0)
	s.LineTo(1, 1)
	if err := s.Stroke(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Stroke() = %v, want ErrNoTarget", err)
	}
	if !s.path.empty() {
		t.Error("path not cleared after failed Stroke")
	}
	s.DrawCircle(0, 0, 1)
	if err := s.Fill(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Fill() = %v, want ErrNoTarget", err)
	}
}

func TestSurfacePaintState(t *testing.T) {
	s := New(nil)
	s.SetColor(gg.Hex("#FF0000").Color())
	s.SetLineWidth(3)
	s.SetLineCap(gg.LineCapRound)
	if s.color.R < 0.99 || s.color.G > 0.01 {
		t.Errorf("color = %+v, want red", s.color)
	}
	if s.width != 3 || s.cap != gg.LineCapRound {
		t.Errorf("width, cap = %v, %v", s.width, s.cap)
	}
}
