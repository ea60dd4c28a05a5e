// Package backend provides pluggable output canvases for coaster scenes.
//
// A backend creates Canvas values: a coaster.Surface that can be encoded
// as PNG. Backends register themselves from init() and are selected at
// runtime by name.
//
// # Backend Selection
//
//	b, err := backend.Lookup("") // best available
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := b.NewCanvas(960, 640, gg.White)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	_ = r.DrawStraightTrack(c, x, y, coaster.South, 0)
//	_ = c.EncodePNG(f)
//
// # Available Backends
//
//   - "software": draws straight onto a gg.Context (always available)
//   - "recording": records commands, rasterizes on EncodePNG
//
// The ebiten subpackage adapts an *ebiten.Image for interactive viewers;
// it is not a registered backend because it needs a running game loop.
package backend
