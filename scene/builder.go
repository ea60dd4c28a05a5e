package scene

import "github.com/gogpu/coaster"

// Builder lays out a ride piece by piece, following the train. Each call
// places one piece on the current cell and advances to the cell beyond its
// exit edge.
//
// Example:
//
//	pieces := scene.NewBuilder(0, 3, coaster.South, 0).
//	    Straight(1).
//	    LiftHill(3).
//	    Turn(false).
//	    Slope(-3).
//	    Loop(6).
//	    Pieces()
type Builder struct {
	col, row int
	heading  coaster.Direction
	height   float64
	pieces   []Piece
}

// NewBuilder starts a ride on cell (col, row) travelling heading at the
// given height.
func NewBuilder(col, row int, heading coaster.Direction, height float64) *Builder {
	return &Builder{col: col, row: row, heading: heading, height: height}
}

// ---------------------------------------------------------------------------
// Pieces
// ---------------------------------------------------------------------------

// Straight places n level straights.
func (b *Builder) Straight(n int) *Builder {
	for range n {
		b.place(coaster.Straight, b.heading, b.height, false)
	}
	return b
}

// ChainStraight places n level straights with a chain.
func (b *Builder) ChainStraight(n int) *Builder {
	for range n {
		b.place(coaster.Straight, b.heading, b.height, true)
	}
	return b
}

// Turn places a quarter turn and changes heading.
func (b *Builder) Turn(right bool) *Builder {
	shape := coaster.TurnLeft
	if right {
		shape = coaster.TurnRight
	}
	exit := b.heading.Opposite().Turn(right)
	b.place(shape, exit, b.height, false)
	return b
}

// Slope places a ramp climbing rise units, or dropping for negative rise.
func (b *Builder) Slope(rise float64) *Builder {
	shape := coaster.SlopeUp
	if rise < 0 {
		shape = coaster.SlopeDown
	}
	b.place(shape, b.heading, b.height+rise, false)
	return b
}

// LiftHill places a chain-driven ramp climbing rise units.
func (b *Builder) LiftHill(rise float64) *Builder {
	b.place(coaster.LiftHill, b.heading, b.height+rise, false)
	return b
}

// Loop places a vertical loop of the given height. Loops stand on the
// ground, so the ride continues at height zero.
func (b *Builder) Loop(loopHeight float64) *Builder {
	b.placeSegment(coaster.TrackSegment{
		Shape:       coaster.Loop,
		Entry:       b.heading.Opposite(),
		Exit:        b.heading,
		StartHeight: 0,
		EndHeight:   loopHeight,
	}, b.heading, 0)
	return b
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// Pieces returns a copy of the pieces placed so far.
func (b *Builder) Pieces() []Piece {
	return append([]Piece(nil), b.pieces...)
}

// Cursor returns the next cell, heading and height.
func (b *Builder) Cursor() (col, row int, heading coaster.Direction, height float64) {
	return b.col, b.row, b.heading, b.height
}

func (b *Builder) place(shape coaster.Shape, exit coaster.Direction, endHeight float64, chain bool) {
	b.placeSegment(coaster.TrackSegment{
		Shape:       shape,
		Entry:       b.heading.Opposite(),
		Exit:        exit,
		StartHeight: b.height,
		EndHeight:   endHeight,
		ChainLift:   chain,
	}, exit, endHeight)
}

func (b *Builder) placeSegment(seg coaster.TrackSegment, exit coaster.Direction, endHeight float64) {
	b.pieces = append(b.pieces, Piece{Col: b.col, Row: b.row, TrackSegment: seg})
	b.heading = exit
	b.height = endHeight
	b.col, b.row = exit.Step(b.col, b.row)
}
