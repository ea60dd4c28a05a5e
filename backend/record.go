package backend

import (
	"fmt"
	"io"

	"github.com/gogpu/coaster"
	"github.com/gogpu/coaster/recording"
	"github.com/gogpu/gg"
)

func init() {
	Register(Recording, func() Backend {
		return &RecordingBackend{}
	})
}

// RecordingBackend captures every drawing command and only rasterizes when
// the canvas is encoded. Useful for inspecting what a scene issued.
type RecordingBackend struct{}

// Name returns the backend identifier.
func (b *RecordingBackend) Name() string {
	return Recording
}

// NewCanvas creates a recording canvas.
func (b *RecordingBackend) NewCanvas(width, height int, background gg.RGBA) (Canvas, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &RecordingCanvas{
		Recorder:   recording.NewRecorder(),
		width:      width,
		height:     height,
		background: background,
	}, nil
}

// RecordingCanvas records drawing and replays it onto a fresh gg.Context
// in EncodePNG.
type RecordingCanvas struct {
	*recording.Recorder

	width, height int
	background    gg.RGBA
}

var _ coaster.Surface = (*RecordingCanvas)(nil)

// Recording returns the commands captured so far.
func (c *RecordingCanvas) Recording() *recording.Recording {
	return c.Finish()
}

// EncodePNG replays the recording and writes the result to w.
func (c *RecordingCanvas) EncodePNG(w io.Writer) error {
	rec := c.Finish()
	coaster.Logger().Debug("backend: replaying recording",
		"commands", rec.Len(),
		"strokes", rec.Count(recording.CmdStroke),
		"fills", rec.Count(recording.CmdFill))

	dc := gg.NewContext(c.width, c.height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(c.background)
	if err := rec.Playback(dc); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	return dc.EncodePNG(w)
}

// Close discards the recorded commands.
func (c *RecordingCanvas) Close() error {
	c.Reset()
	return nil
}
