package coaster

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Direction is one of the four grid headings. Each value also names the
// tile edge that faces that heading.
type Direction uint8

const (
	// North faces the upper-left tile edge (col-1).
	North Direction = iota
	// East faces the upper-right tile edge (row-1).
	East
	// South faces the lower-right tile edge (col+1).
	South
	// West faces the lower-left tile edge (row+1).
	West
)

var directionNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d.Valid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Valid reports whether d is one of the four cardinal values.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the heading rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Turn returns the exit edge of a turn entered through edge d.
// Turning right walks the edges clockwise (north → east), turning left
// counter-clockwise (north → west).
func (d Direction) Turn(right bool) Direction {
	return turnTable[d%4][boolIndex(right)]
}

// turnTable maps [entry][turnRight] to the exit edge.
var turnTable = [4][2]Direction{
	North: {West, East},
	East:  {North, South},
	South: {East, West},
	West:  {South, North},
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// NorthSouth reports whether d lies on the north/south grid axis.
func (d Direction) NorthSouth() bool {
	return d == North || d == South
}

// Vector returns the screen-space unit vector of the heading.
// The four vectors are orthogonal on the grid and appear at ±(1, ±tileAspect)
// on screen.
func (d Direction) Vector() gg.Point {
	n := math.Hypot(1, tileAspect)
	sx, sy := 1/n, tileAspect/n
	switch d {
	case North:
		return gg.Pt(-sx, -sy)
	case East:
		return gg.Pt(sx, -sy)
	case South:
		return gg.Pt(sx, sy)
	case West:
		return gg.Pt(-sx, sy)
	}
	return gg.Point{}
}

// Step returns the grid cell adjacent to (col, row) across edge d.
func (d Direction) Step(col, row int) (int, int) {
	switch d {
	case North:
		return col - 1, row
	case East:
		return col, row - 1
	case South:
		return col + 1, row
	case West:
		return col, row + 1
	}
	return col, row
}

// ParseDirection parses a direction name ("north", "N", ...), ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
