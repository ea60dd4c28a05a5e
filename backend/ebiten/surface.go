package ebiten

import (
	"errors"
	"image/color"

	"github.com/gogpu/coaster"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoTarget is returned by Stroke and Fill before SetTarget is called.
var ErrNoTarget = errors.New("ebiten: no target image")

// Surface draws onto an *ebiten.Image.
//
// A Surface may be reused across frames with SetTarget. It is not safe
// for concurrent use.
type Surface struct {
	dst   *ebiten.Image
	white *ebiten.Image
	path  pathBuffer

	color gg.RGBA
	width float64
	cap   gg.LineCap

	// AntiAlias enables anti-aliased strokes and fills.
	AntiAlias bool
}

var _ coaster.Surface = (*Surface)(nil)

// New creates a Surface drawing onto dst. dst may be nil and set later.
func New(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:       dst,
		color:     gg.Black,
		width:     1,
		cap:       gg.LineCapButt,
		AntiAlias: true,
	}
}

// SetTarget switches the destination image and discards any pending path.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	s.path.reset()
}

func (s *Surface) MoveTo(x, y float64)        { s.path.moveTo(gg.Pt(x, y)) }
func (s *Surface) LineTo(x, y float64)        { s.path.lineTo(gg.Pt(x, y)) }
func (s *Surface) ClosePath()                 { s.path.closePath() }
func (s *Surface) ClearPath()                 { s.path.reset() }
func (s *Surface) DrawCircle(x, y, r float64) { s.path.circle(gg.Pt(x, y), r) }

func (s *Surface) SetColor(c color.Color)        { s.color = gg.FromColor(c) }
func (s *Surface) SetLineWidth(width float64)    { s.width = width }
func (s *Surface) SetLineCap(lineCap gg.LineCap) { s.cap = lineCap }

// Stroke draws the current path with the current colour, width and cap,
// then clears it.
func (s *Surface) Stroke() error {
	defer s.path.reset()
	if s.dst == nil {
		return ErrNoTarget
	}
	clr := s.color.Color()
	w := float32(s.width)

	var extend float64
	if s.cap == gg.LineCapSquare {
		extend = s.width / 2
	}
	for _, seg := range s.path.segments(extend) {
		vector.StrokeLine(s.dst,
			float32(seg.a.X), float32(seg.a.Y), float32(seg.b.X), float32(seg.b.Y),
			w, clr, s.AntiAlias)
	}
	if s.cap == gg.LineCapRound {
		for _, v := range s.path.vertices() {
			vector.DrawFilledCircle(s.dst, float32(v.X), float32(v.Y), w/2, clr, s.AntiAlias)
		}
	}
	for _, c := range s.path.circles {
		vector.StrokeCircle(s.dst, float32(c.c.X), float32(c.c.Y), float32(c.r), w, clr, s.AntiAlias)
	}
	return nil
}

// Fill fills every closed area and circle of the current path, then
// clears it.
func (s *Surface) Fill() error {
	defer s.path.reset()
	if s.dst == nil {
		return ErrNoTarget
	}
	clr := s.color.Color()
	for _, c := range s.path.circles {
		vector.DrawFilledCircle(s.dst, float32(c.c.X), float32(c.c.Y), float32(c.r), clr, s.AntiAlias)
	}
	for _, poly := range s.path.polygons() {
		s.fillPolygon(poly)
	}
	return nil
}

func (s *Surface) fillPolygon(pts []gg.Point) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, s.color)

	if s.white == nil {
		s.white = ebiten.NewImage(1, 1)
		s.white.Fill(color.White)
	}
	s.dst.DrawTriangles(vs, is, s.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
	})
}

// tint points every vertex at the white source pixel and colours it c.
func tint(vs []ebiten.Vertex, c gg.RGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}
}
