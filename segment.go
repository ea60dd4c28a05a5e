package coaster

import (
	"fmt"
	"strings"
)

// Shape tags the geometry of a track segment.
type Shape uint8

const (
	Straight Shape = iota
	TurnLeft
	TurnRight
	SlopeUp
	SlopeDown
	LiftHill
	Loop
)

var shapeNames = [...]string{
	Straight:  "straight",
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
	SlopeUp:   "slope-up",
	SlopeDown: "slope-down",
	LiftHill:  "lift-hill",
	Loop:      "loop",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", s)
}

// ParseShape parses a shape name as produced by Shape.String.
// Underscores and spaces are accepted in place of hyphens.
func ParseShape(s string) (Shape, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range shapeNames {
		if name == norm {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// TrackSegment is one rendered unit of a track. It is owned by the caller's
// track graph and only read here.
//
// Entry and Exit name the tile edges the train passes through. For a loop,
// EndHeight is the loop height.
type TrackSegment struct {
	Shape       Shape
	Entry       Direction
	Exit        Direction
	StartHeight float64
	EndHeight   float64
	ChainLift   bool
}
