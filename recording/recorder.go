package recording

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/gg"
)

// Target receives a replayed recording. It has the same method set as
// coaster.Surface, so *gg.Context, a Recorder and the ebiten backend all
// qualify.
type Target interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	DrawCircle(x, y, r float64)
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	Stroke() error
	Fill() error
}

var _ Target = (*Recorder)(nil)

// Recorder captures drawing operations as commands.
//
// Example:
//
//	rec := recording.NewRecorder()
//	rec.SetColor(color.Black)
//	rec.DrawCircle(10, 10, 2)
//	_ = rec.Fill()
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	paintErr error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailPaint makes every later Stroke and Fill return err. The commands are
// still recorded. Pass nil to clear. Intended for exercising error paths
// in code that draws.
func (r *Recorder) FailPaint(err error) {
	r.paintErr = err
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Finish returns an immutable Recording of the commands captured so far.
func (r *Recorder) Finish() *Recording {
	return &Recording{commands: slices.Clone(r.commands)}
}

func (r *Recorder) add(c Command) {
	r.commands = append(r.commands, c)
}

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(x, y float64) { r.add(MoveToCommand{X: x, Y: y}) }

// LineTo records a LineToCommand.
func (r *Recorder) LineTo(x, y float64) { r.add(LineToCommand{X: x, Y: y}) }

// ClosePath records a ClosePathCommand.
func (r *Recorder) ClosePath() { r.add(ClosePathCommand{}) }

// ClearPath records a ClearPathCommand.
func (r *Recorder) ClearPath() { r.add(ClearPathCommand{}) }

// DrawCircle records a CircleCommand.
func (r *Recorder) DrawCircle(x, y, radius float64) { r.add(CircleCommand{X: x, Y: y, R: radius}) }

// SetColor records a SetColorCommand.
func (r *Recorder) SetColor(c color.Color) { r.add(SetColorCommand{Color: gg.FromColor(c)}) }

// SetLineWidth records a SetLineWidthCommand.
func (r *Recorder) SetLineWidth(width float64) { r.add(SetLineWidthCommand{Width: width}) }

// SetLineCap records a SetLineCapCommand.
func (r *Recorder) SetLineCap(lineCap gg.LineCap) { r.add(SetLineCapCommand{Cap: lineCap}) }

// Stroke records a StrokeCommand.
func (r *Recorder) Stroke() error {
	r.add(StrokeCommand{})
	return r.paintErr
}

// Fill records a FillCommand.
func (r *Recorder) Fill() error {
	r.add(FillCommand{})
	return r.paintErr
}

// Recording is an immutable list of drawing commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto dst in order. It stops at the first
// Stroke or Fill error.
func (r *Recording) Playback(dst Target) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case MoveToCommand:
			dst.MoveTo(c.X, c.Y)
		case LineToCommand:
			dst.LineTo(c.X, c.Y)
		case ClosePathCommand:
			dst.ClosePath()
		case ClearPathCommand:
			dst.ClearPath()
		case CircleCommand:
			dst.DrawCircle(c.X, c.Y, c.R)
		case SetColorCommand:
			dst.SetColor(c.Color.Color())
		case SetLineWidthCommand:
			dst.SetLineWidth(c.Width)
		case SetLineCapCommand:
			dst.SetLineCap(c.Cap)
		case StrokeCommand:
			err = dst.Stroke()
		case FillCommand:
			err = dst.Fill()
		}
		if err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
