package recording

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestRecorderRecordsInOrder(t *testing.T) {
	rec := NewRecorder()
	rec.SetColor(color.Black)
	rec.SetLineWidth(2)
	rec.SetLineCap(gg.LineCapRound)
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	if err := rec.Stroke(); err != nil {
		t.Fatalf("Stroke() = %v", err)
	}

	want := []CommandType{CmdSetColor, CmdSetLineWidth, CmdSetLineCap, CmdMoveTo, CmdLineTo, CmdStroke}
	r := rec.Finish()
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, c := range r.Commands() {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder()
	rec.MoveTo(0, 0)
	r := rec.Finish()

	rec.LineTo(1, 1)
	rec.Reset()
	rec.MoveTo(5, 5)

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if c, ok := r.Commands()[0].(MoveToCommand); !ok || c.X != 0 {
		t.Errorf("first command = %#v, want MoveTo(0, 0)", r.Commands()[0])
	}
}

func TestRecordingCount(t *testing.T) {
	rec := NewRecorder()
	for i := 0; i < 3; i++ {
		rec.DrawCircle(float64(i), 0, 1)
		_ = rec.Fill()
	}
	_ = rec.Stroke()

	r := rec.Finish()
	if got := r.Count(CmdFill); got != 3 {
		t.Errorf("Count(Fill) = %d, want 3", got)
	}
	if got := r.Count(CmdStroke); got != 1 {
		t.Errorf("Count(Stroke) = %d, want 1", got)
	}
	if got := r.Count(CmdMoveTo); got != 0 {
		t.Errorf("Count(MoveTo) = %d, want 0", got)
	}
}

func TestFailPaint(t *testing.T) {
	errBoom := errors.New("boom")
	rec := NewRecorder()
	rec.FailPaint(errBoom)

	if err := rec.Stroke(); !errors.Is(err, errBoom) {
		t.Errorf("Stroke() = %v, want %v", err, errBoom)
	}
	if err := rec.Fill(); !errors.Is(err, errBoom) {
		t.Errorf("Fill() = %v, want %v", err, errBoom)
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (failed paints are still recorded)", rec.Len())
	}

	rec.FailPaint(nil)
	if err := rec.Stroke(); err != nil {
		t.Errorf("Stroke() after clearing = %v, want nil", err)
	}
}

func TestPaths(t *testing.T) {
	rec := NewRecorder()
	rec.SetColor(color.NRGBA{R: 255, A: 255})
	rec.SetLineWidth(3)
	rec.SetLineCap(gg.LineCapButt)
	rec.MoveTo(0, 0)
	rec.LineTo(10, 0)
	rec.LineTo(10, 10)
	rec.ClosePath()
	_ = rec.Fill()

	// Inherits width and cap, sets nothing.
	rec.MoveTo(1, 1)
	rec.LineTo(2, 2)
	_ = rec.Stroke()

	// Cleared path never reaches the output.
	rec.MoveTo(7, 7)
	rec.ClearPath()
	rec.DrawCircle(5, 5, 1)
	_ = rec.Fill()

	paths := rec.Finish().Paths()
	if len(paths) != 3 {
		t.Fatalf("len(Paths()) = %d, want 3", len(paths))
	}

	p := paths[0]
	if p.Op != CmdFill {
		t.Errorf("paths[0].Op = %v, want Fill", p.Op)
	}
	if len(p.Subpaths) != 1 || !p.Subpaths[0].Closed || len(p.Points()) != 3 {
		t.Errorf("paths[0].Subpaths = %+v, want one closed triangle", p.Subpaths)
	}
	if p.LineWidth != 3 || p.LineCap != gg.LineCapButt {
		t.Errorf("paths[0] width/cap = %v/%v, want 3/butt", p.LineWidth, p.LineCap)
	}
	if math.Abs(p.Color.R-1) > 1e-9 || p.Color.G != 0 {
		t.Errorf("paths[0].Color = %+v, want red", p.Color)
	}
	if !p.ColorSet || !p.WidthSet || !p.CapSet {
		t.Error("paths[0] state should be marked as explicitly set")
	}

	q := paths[1]
	if q.Op != CmdStroke || q.LineWidth != 3 {
		t.Errorf("paths[1] = %v width %v, want Stroke width 3", q.Op, q.LineWidth)
	}
	if q.ColorSet || q.WidthSet || q.CapSet {
		t.Error("paths[1] state should be inherited, not set")
	}

	c := paths[2]
	if len(c.Subpaths) != 0 || len(c.Circles) != 1 || c.Circles[0].R != 1 {
		t.Errorf("paths[2] = %+v, want a single circle", c)
	}
}

// countingTarget tallies calls and can fail on the n-th paint.
type countingTarget struct {
	calls   map[string]int
	failAt  int
	paints  int
	lastCap gg.LineCap
}

func newCountingTarget() *countingTarget {
	return &countingTarget{calls: map[string]int{}, failAt: -1}
}

func (c *countingTarget) MoveTo(x, y float64)        { c.calls["MoveTo"]++ }
func (c *countingTarget) LineTo(x, y float64)        { c.calls["LineTo"]++ }
func (c *countingTarget) ClosePath()                 { c.calls["ClosePath"]++ }
func (c *countingTarget) ClearPath()                 { c.calls["ClearPath"]++ }
func (c *countingTarget) DrawCircle(x, y, r float64) { c.calls["DrawCircle"]++ }
func (c *countingTarget) SetColor(color.Color)       { c.calls["SetColor"]++ }
func (c *countingTarget) SetLineWidth(float64)       { c.calls["SetLineWidth"]++ }
func (c *countingTarget) SetLineCap(lc gg.LineCap) {
	c.calls["SetLineCap"]++
	c.lastCap = lc
}

func (c *countingTarget) paint(name string) error {
	c.calls[name]++
	c.paints++
	if c.paints == c.failAt {
		return errors.New("target failure")
	}
	return nil
}

func (c *countingTarget) Stroke() error { return c.paint("Stroke") }
func (c *countingTarget) Fill() error   { return c.paint("Fill") }

func TestPlayback(t *testing.T) {
	rec := NewRecorder()
	rec.SetColor(color.White)
	rec.SetLineWidth(1)
	rec.SetLineCap(gg.LineCapSquare)
	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	rec.ClosePath()
	_ = rec.Stroke()
	rec.DrawCircle(0, 0, 1)
	_ = rec.Fill()
	rec.ClearPath()

	dst := newCountingTarget()
	if err := rec.Finish().Playback(dst); err != nil {
		t.Fatalf("Playback() = %v", err)
	}

	want := map[string]int{
		"SetColor": 1, "SetLineWidth": 1, "SetLineCap": 1,
		"MoveTo": 1, "LineTo": 1, "ClosePath": 1, "Stroke": 1,
		"DrawCircle": 1, "Fill": 1, "ClearPath": 1,
	}
	for name, n := range want {
		if dst.calls[name] != n {
			t.Errorf("%s called %d times, want %d", name, dst.calls[name], n)
		}
	}
	if dst.lastCap != gg.LineCapSquare {
		t.Errorf("line cap = %v, want square", dst.lastCap)
	}
}

func TestPlaybackStopsOnError(t *testing.T) {
	rec := NewRecorder()
	for i := 0; i < 4; i++ {
		rec.MoveTo(0, 0)
		rec.LineTo(1, 0)
		_ = rec.Stroke()
	}

	dst := newCountingTarget()
	dst.failAt = 2
	err := rec.Finish().Playback(dst)
	if err == nil {
		t.Fatal("Playback() = nil, want error")
	}
	if dst.calls["Stroke"] != 2 {
		t.Errorf("Stroke called %d times, want 2", dst.calls["Stroke"])
	}
	if dst.calls["MoveTo"] != 2 {
		t.Errorf("MoveTo called %d times, want 2", dst.calls["MoveTo"])
	}
}

func TestPlaybackIntoRecorder(t *testing.T) {
	src := NewRecorder()
	src.SetLineWidth(4)
	src.MoveTo(1, 2)
	src.LineTo(3, 4)
	_ = src.Stroke()
	first := src.Finish()

	dst := NewRecorder()
	if err := first.Playback(dst); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	second := dst.Finish()

	if second.Len() != first.Len() {
		t.Fatalf("replayed Len() = %d, want %d", second.Len(), first.Len())
	}
	for i := range first.Commands() {
		if first.Commands()[i] != second.Commands()[i] {
			t.Errorf("command %d = %#v, want %#v", i, second.Commands()[i], first.Commands()[i])
		}
	}
}
