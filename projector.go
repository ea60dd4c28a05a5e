package coaster

import (
	"fmt"

	"github.com/gogpu/gg"
)

// tileAspect is the fixed ratio of tile height to tile width.
const tileAspect = 0.60

// Default projection parameters.
const (
	DefaultTileWidth  = 64.0
	DefaultHeightUnit = 16.0
)

// Projector maps grid cells to screen space under the isometric projection.
// It holds no state beyond its two scale parameters.
type Projector struct {
	// TileWidth is the screen width of one tile in pixels.
	TileWidth float64
	// HeightUnit is the screen rise of one height unit in pixels.
	HeightUnit float64
}

// NewProjector returns a projector with the default tile width and height unit.
func NewProjector() Projector {
	return Projector{TileWidth: DefaultTileWidth, HeightUnit: DefaultHeightUnit}
}

// TileHeight returns the screen height of one tile.
func (p Projector) TileHeight() float64 {
	return p.TileWidth * tileAspect
}

// Validate reports whether the projector can produce finite geometry.
func (p Projector) Validate() error {
	if err := checkFinite("projector", p.TileWidth, p.HeightUnit); err != nil {
		return err
	}
	if p.TileWidth <= 0 || p.HeightUnit <= 0 {
		return fmt.Errorf("%w: width %v, height unit %v", ErrInvalidTile, p.TileWidth, p.HeightUnit)
	}
	return nil
}

// Project returns the top-left screen anchor of the tile at (col, row).
func (p Projector) Project(col, row float64) gg.Point {
	return gg.Point{
		X: (col - row) * p.TileWidth / 2,
		Y: (col + row) * p.TileHeight() / 2,
	}
}

// ProjectWithHeight is Project raised by height units.
func (p Projector) ProjectWithHeight(col, row, height float64) gg.Point {
	pt := p.Project(col, row)
	pt.Y -= height * p.HeightUnit
	return pt
}

// Lift returns pt raised by height units.
func (p Projector) Lift(pt gg.Point, height float64) gg.Point {
	return gg.Point{X: pt.X, Y: pt.Y - height*p.HeightUnit}
}
