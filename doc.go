// Package coaster draws roller-coaster track on an isometric 2D canvas.
//
// # Overview
//
// coaster turns grid-addressed track segments (cell, heading, height,
// shape) into vector strokes: rails, crossties, wood or steel support
// towers, vertical loops and animated chain-lift links. Drawing goes
// through the small Surface interface, which *gg.Context satisfies, so
// output can be rasterized by gg, recorded with the recording package, or
// shown in an ebiten window via backend/ebiten.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/coaster"
//	    "github.com/gogpu/gg"
//	)
//
//	r, _ := coaster.NewRenderer()
//	dc := gg.NewContext(640, 480)
//
//	o := r.CellOrigin(2, 1).Add(gg.Pt(320, 40))
//	_ = r.DrawStraightTrack(dc, o.X, o.Y, coaster.South, 2)
//	_ = dc.SavePNG("track.png")
//
// # Projection
//
// A tile is a diamond inside a TileWidth × 0.6·TileWidth box. Cell
// (col, row) has its top-left anchor at ((col-row)·w/2, (col+row)·h/2);
// height lifts points by HeightUnit pixels per unit (screen up is -y).
//
// Every renderer takes rail endpoints from Projector.Anchors: the four edge
// midpoints and the tile centre. Two segments that share a tile edge
// therefore meet at exactly the same point, whatever their shapes.
//
// # Headings
//
// Straight, slope, loop and chain calls take the heading of travel: the
// track runs from the edge opposite the heading to the edge facing it.
// Turns take the entry edge instead and derive the exit edge from
// Direction.Turn.
//
// # Animation
//
// The chain-lift phase is a pure function of the tick passed to
// DrawChainLift. coaster keeps no state between calls.
package coaster
