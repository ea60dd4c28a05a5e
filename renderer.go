package coaster

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Default track geometry in pixels.
const (
	DefaultTrackWidth = 8.0
	DefaultTieSpacing = 8.0
)

// Renderer draws track segments onto a Surface.
//
// A Renderer holds only immutable projection and track-gauge parameters,
// so one value may be shared by goroutines drawing to different surfaces.
// All per-frame input (position, heights, tick) is passed to each call.
type Renderer struct {
	proj       Projector
	trackWidth float64
	tieSpacing float64
}

// NewRenderer creates a Renderer with the given options applied over the
// defaults (64 px tiles, 16 px height unit, 8 px gauge, 8 px tie spacing).
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		proj:       NewProjector(),
		trackWidth: DefaultTrackWidth,
		tieSpacing: DefaultTieSpacing,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.proj.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinite("renderer", r.trackWidth, r.tieSpacing); err != nil {
		return nil, err
	}
	if r.trackWidth <= 0 || r.tieSpacing <= 0 {
		return nil, fmt.Errorf("%w: track width %v, tie spacing %v",
			ErrInvalidTile, r.trackWidth, r.tieSpacing)
	}
	return r, nil
}

// Projector returns the projection used by r.
func (r *Renderer) Projector() Projector {
	return r.proj
}

// CellOrigin returns the top-left screen anchor of the tile at (col, row),
// relative to a grid whose cell (0, 0) sits at the surface origin.
func (r *Renderer) CellOrigin(col, row int) gg.Point {
	return r.proj.Project(float64(col), float64(row))
}

func (r *Renderer) halfWidth() float64 {
	return r.trackWidth / 2
}

// DrawSegment draws seg on the tile whose origin is (ox, oy), choosing the
// shape renderer from seg.Shape. tick drives the chain-lift phase for lift
// hills and segments with ChainLift set; pass 0 for a still frame.
func (r *Renderer) DrawSegment(s Surface, ox, oy float64, seg TrackSegment, tick float64, opts ...DrawOption) error {
	Logger().Debug("coaster: draw segment",
		"shape", seg.Shape, "entry", seg.Entry, "exit", seg.Exit,
		"start", seg.StartHeight, "end", seg.EndHeight)

	var err error
	chain := seg.ChainLift
	switch seg.Shape {
	case Straight:
		err = r.DrawStraightTrack(s, ox, oy, seg.Exit, seg.StartHeight, opts...)
	case TurnLeft, TurnRight:
		err = r.DrawCurvedTrack(s, ox, oy, seg.Entry, seg.Shape == TurnRight, seg.StartHeight, opts...)
		// A chain cannot follow a turn.
		chain = false
	case SlopeUp, SlopeDown:
		err = r.DrawSlopeTrack(s, ox, oy, seg.Exit, seg.StartHeight, seg.EndHeight, opts...)
	case LiftHill:
		err = r.DrawSlopeTrack(s, ox, oy, seg.Exit, seg.StartHeight, seg.EndHeight, opts...)
		chain = true
	case Loop:
		err = r.DrawLoopTrack(s, ox, oy, seg.Exit, seg.EndHeight, opts...)
		chain = false
	default:
		return fmt.Errorf("draw segment: %w (%d)", ErrUnknownShape, int(seg.Shape))
	}
	if err != nil || !chain {
		return err
	}

	end := seg.EndHeight
	if seg.Shape == Straight {
		end = seg.StartHeight
	}
	return r.DrawChainLift(s, ox, oy, seg.Exit, seg.StartHeight, end, tick)
}

// tieCount returns the number of crossties for a run of the given length.
func (r *Renderer) tieCount(length float64) int {
	return max(3, int(math.Floor(length/r.tieSpacing)))
}
