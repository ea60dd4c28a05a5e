// Package recording captures coaster drawing as a list of typed commands.
//
// A Recorder implements coaster.Surface. Instead of rasterizing, it
// appends one Command per call (MoveTo, LineTo, SetColor, Stroke, ...).
// Finish returns an immutable Recording that can be inspected or replayed
// onto any Target, including *gg.Context.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	_ = renderer.DrawLoopTrack(rec, 0, 0, coaster.East, 4)
//	r := rec.Finish()
//
//	fmt.Println(r.Count(recording.CmdStroke), "strokes")
//	for _, p := range r.Paths() {
//	    fmt.Println(p.Op, p.LineWidth, p.Subpaths)
//	}
//
// # Playback
//
// A Recording replays in order onto a Target:
//
//	dc := gg.NewContext(800, 600)
//	if err := r.Playback(dc); err != nil {
//	    log.Fatal(err)
//	}
//
// Recording a frame once and replaying it is useful when the same static
// track is composited under a changing chain-lift overlay.
//
// A Recorder is not safe for concurrent use. A finished Recording is
// read-only and may be shared.
package recording
