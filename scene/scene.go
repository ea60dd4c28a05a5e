package scene

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/coaster"
	"github.com/gogpu/gg"
)

// ErrInvalidScene is returned for a scene file that cannot be drawn.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is a complete layout with its projection and canvas settings.
type Scene struct {
	TileWidth  float64
	HeightUnit float64
	TrackWidth float64
	Style      coaster.StrutStyle
	TrackColor gg.RGBA
	Background gg.RGBA

	// Width and Height are the canvas size in pixels.
	Width, Height int

	// Origin is where cell (0, 0) is drawn.
	Origin gg.Point

	Pieces []Piece
}

// DefaultPieces is the built-in demo ride: a lift hill, a drop into a
// loop, and turns at either end.
func DefaultPieces() []Piece {
	return NewBuilder(0, 3, coaster.South, 0).
		Straight(1).
		LiftHill(3).
		ChainStraight(1).
		Turn(false).
		Slope(-3).
		Loop(6).
		Straight(1).
		Turn(true).
		Straight(1).
		Pieces()
}

// Default returns the built-in demo scene.
func Default() *Scene {
	return &Scene{
		TileWidth:  coaster.DefaultTileWidth,
		HeightUnit: coaster.DefaultHeightUnit,
		TrackWidth: coaster.DefaultTrackWidth,
		Style:      coaster.Metal,
		TrackColor: coaster.DefaultTrackColor,
		Background: gg.Hex(defaultBackground),
		Width:      960,
		Height:     640,
		Origin:     gg.Pt(560, 200),
		Pieces:     DefaultPieces(),
	}
}

// RendererOptions returns the renderer options the scene asks for.
func (s *Scene) RendererOptions() []coaster.Option {
	return []coaster.Option{
		coaster.WithTileWidth(s.TileWidth),
		coaster.WithHeightUnit(s.HeightUnit),
		coaster.WithTrackWidth(s.TrackWidth),
	}
}

// DrawOptions returns the per-call options the scene asks for.
func (s *Scene) DrawOptions() []coaster.DrawOption {
	return []coaster.DrawOption{
		coaster.WithTrackColor(s.TrackColor.Color()),
		coaster.WithStrutStyle(s.Style),
	}
}

// NewRenderer creates a renderer configured for the scene.
func (s *Scene) NewRenderer() (*coaster.Renderer, error) {
	return coaster.NewRenderer(s.RendererOptions()...)
}

// Ordered returns the pieces sorted back to front. Pieces at the same
// depth keep their layout order.
func (s *Scene) Ordered() []Piece {
	out := slices.Clone(s.Pieces)
	slices.SortStableFunc(out, func(a, b Piece) int {
		return cmp.Compare(a.depth(), b.depth())
	})
	return out
}

// CellOrigin returns the tile origin of piece p on the canvas.
func (s *Scene) CellOrigin(r *coaster.Renderer, p Piece) gg.Point {
	return r.CellOrigin(p.Col, p.Row).Add(s.Origin)
}

// Draw renders every piece onto surf with r, back to front. tick drives
// the chain lifts. It stops at the first error.
func (s *Scene) Draw(r *coaster.Renderer, surf coaster.Surface, tick float64) error {
	opts := s.DrawOptions()
	for i, p := range s.Ordered() {
		o := s.CellOrigin(r, p)
		if err := r.DrawSegment(surf, o.X, o.Y, p.TrackSegment, tick, opts...); err != nil {
			return fmt.Errorf("scene: piece %d at (%d, %d): %w", i, p.Col, p.Row, err)
		}
	}
	return nil
}

// parseColor parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func parseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidScene, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidScene, s)
	}
	return gg.Hex(hex), nil
}
