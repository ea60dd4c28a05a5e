package scene

import (
	"testing"

	"github.com/gogpu/coaster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DefaultRide(t *testing.T) {
	pieces := DefaultPieces()
	require.Len(t, pieces, 9)

	want := []struct {
		col, row    int
		shape       coaster.Shape
		entry, exit coaster.Direction
		start, end  float64
	}{
		{0, 3, coaster.Straight, coaster.North, coaster.South, 0, 0},
		{1, 3, coaster.LiftHill, coaster.North, coaster.South, 0, 3},
		{2, 3, coaster.Straight, coaster.North, coaster.South, 3, 3},
		{3, 3, coaster.TurnLeft, coaster.North, coaster.West, 3, 3},
		{3, 4, coaster.SlopeDown, coaster.East, coaster.West, 3, 0},
		{3, 5, coaster.Loop, coaster.East, coaster.West, 0, 6},
		{3, 6, coaster.Straight, coaster.East, coaster.West, 0, 0},
		{3, 7, coaster.TurnRight, coaster.East, coaster.South, 0, 0},
		{4, 7, coaster.Straight, coaster.North, coaster.South, 0, 0},
	}
	for i, w := range want {
		p := pieces[i]
		assert.Equal(t, w.col, p.Col, "piece %d col", i)
		assert.Equal(t, w.row, p.Row, "piece %d row", i)
		assert.Equal(t, w.shape, p.Shape, "piece %d shape", i)
		assert.Equal(t, w.entry, p.Entry, "piece %d entry", i)
		assert.Equal(t, w.exit, p.Exit, "piece %d exit", i)
		assert.InDelta(t, w.start, p.StartHeight, 1e-9, "piece %d start", i)
		assert.InDelta(t, w.end, p.EndHeight, 1e-9, "piece %d end", i)
	}
	assert.True(t, pieces[2].ChainLift, "chained straight after the lift")
}

func TestBuilder_Cursor(t *testing.T) {
	b := NewBuilder(2, 2, coaster.East, 1).Slope(2).Turn(true)
	col, row, heading, height := b.Cursor()

	// East steps row-1; a right turn entered from the west edge leaves north.
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, coaster.North, heading)
	assert.InDelta(t, 3.0, height, 1e-9)
}

func TestBuilder_PiecesIsCopy(t *testing.T) {
	b := NewBuilder(0, 0, coaster.South, 0).Straight(2)
	got := b.Pieces()
	got[0].Col = 99
	assert.Equal(t, 0, b.Pieces()[0].Col)
}

// Consecutive pieces must share an edge: each piece's exit leads to the
// next piece's cell, and it enters through the opposite edge.
func TestBuilder_PiecesConnect(t *testing.T) {
	pieces := DefaultPieces()
	for i := 1; i < len(pieces); i++ {
		prev, cur := pieces[i-1], pieces[i]
		col, row := prev.Exit.Step(prev.Col, prev.Row)
		assert.Equal(t, [2]int{col, row}, [2]int{cur.Col, cur.Row}, "piece %d cell", i)
		assert.Equal(t, prev.Exit.Opposite(), cur.Entry, "piece %d entry", i)
	}
}
