package scene

import "github.com/gogpu/coaster"

// Piece is a track segment placed on a grid cell.
type Piece struct {
	Col, Row int
	coaster.TrackSegment
}

// depth orders pieces for drawing: lower depth is farther from the viewer.
func (p Piece) depth() int {
	return p.Col + p.Row
}
