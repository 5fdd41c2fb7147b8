package record

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestRecorderInitialState(t *testing.T) {
	r := NewRecorder()
	want := State{
		Fill: gg.White, FillOn: true,
		Stroke: gg.Black, StrokeWidth: 1, StrokeOn: true,
		Transform: gg.Identity(),
	}
	if diff := cmp.Diff(want, r.State()); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	if len(r.Commands()) != 0 || r.Depth() != 0 {
		t.Errorf("new recorder has %d commands, depth %d", len(r.Commands()), r.Depth())
	}
}

func TestRecorderPaintState(t *testing.T) {
	r := NewRecorder()
	r.SetFillPaint(gg.Red)
	r.SetStrokePaint(gg.Blue, 4)
	if err := r.DrawRect(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	r.DisableFill()
	r.DisableStroke()
	if err := r.DrawLine(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}

	draws := r.Draws()
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}
	first := draws[0].(DrawRectCommand).State
	if first.Fill != gg.Red || first.Stroke != gg.Blue || first.StrokeWidth != 4 || !first.FillOn || !first.StrokeOn {
		t.Errorf("first draw state = %+v", first)
	}
	second := draws[1].(DrawLineCommand).State
	if second.FillOn || second.StrokeOn {
		t.Errorf("second draw state = %+v, want fill and stroke off", second)
	}
	// Disabling keeps the colours for a later re-enable.
	if second.Fill != gg.Red || second.Stroke != gg.Blue {
		t.Errorf("disable dropped colours: %+v", second)
	}
}

func TestRecorderPushPop(t *testing.T) {
	r := NewRecorder()
	before := r.State()

	r.Push()
	r.SetFillPaint(gg.Green)
	r.Translate(10, 20)
	r.Push()
	r.Rotate(math.Pi)
	if r.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", r.Depth())
	}
	r.Pop()
	if got := r.State().Transform; got != gg.Translate(10, 20) {
		t.Errorf("transform after inner Pop = %+v, want translate(10, 20)", got)
	}
	r.Pop()

	if diff := cmp.Diff(before, r.State()); diff != "" {
		t.Errorf("state after Pop mismatch (-before +after):\n%s", diff)
	}

	// Unbalanced Pop is recorded and harmless.
	n := len(r.Commands())
	r.Pop()
	if len(r.Commands()) != n+1 || r.Depth() != 0 {
		t.Errorf("unbalanced Pop: %d commands, depth %d", len(r.Commands()), r.Depth())
	}
	if diff := cmp.Diff(before, r.State()); diff != "" {
		t.Errorf("unbalanced Pop changed state:\n%s", diff)
	}
}

func TestRecorderTransformComposition(t *testing.T) {
	r := NewRecorder()
	r.Translate(5, 0)
	r.Rotate(math.Pi / 2)

	// Local (1, 0) rotates to (0, 1), then shifts to (5, 1).
	p := r.State().Transform.TransformPoint(gg.Pt(1, 0))
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Errorf("transformed point = %v, want (5, 1)", p)
	}
}

func TestRecorderFailOn(t *testing.T) {
	r := NewRecorder()
	boom := errors.New("boom")
	r.FailOn(CmdDrawEllipse, boom)

	if err := r.DrawEllipse(0, 0, 1, 1); !errors.Is(err, boom) {
		t.Errorf("DrawEllipse() = %v, want boom", err)
	}
	if err := r.DrawRect(0, 0, 1, 1); err != nil {
		t.Errorf("DrawRect() = %v, want nil", err)
	}
	if r.Count(CmdDrawEllipse) != 1 {
		t.Error("failed command was not recorded")
	}

	r.Reset()
	if err := r.DrawEllipse(0, 0, 1, 1); !errors.Is(err, boom) {
		t.Error("Reset dropped the injected failure")
	}
	r.FailOn(CmdDrawEllipse, nil)
	if err := r.DrawEllipse(0, 0, 1, 1); err != nil {
		t.Errorf("DrawEllipse() after clearing = %v", err)
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.SetFillPaint(gg.Red)
	_ = r.DrawCircle(0, 0, 2)
	r.Reset()

	if len(r.Commands()) != 0 || r.Depth() != 0 {
		t.Errorf("after Reset: %d commands, depth %d", len(r.Commands()), r.Depth())
	}
	if r.State().Fill != gg.White {
		t.Errorf("after Reset fill = %+v, want white", r.State().Fill)
	}
}

func TestPlayback(t *testing.T) {
	src := NewRecorder()
	src.Push()
	src.SetFillPaint(gg.Red)
	src.DisableStroke()
	src.Translate(1, 2)
	src.Rotate(0.5)
	_ = src.DrawRect(0, 0, 3, 4)
	_ = src.DrawCircle(1, 1, 2)
	_ = src.DrawTriangle(gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(0, 1))
	_ = src.DrawEllipse(0, 0, 4, 2)
	_ = src.DrawText("x", 0, 0)
	src.SetStrokePaint(gg.Black, 2)
	src.DisableFill()
	_ = src.DrawLine(0, 0, 1, 1)
	src.Pop()

	dst := NewRecorder()
	if err := src.Playback(dst); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if diff := cmp.Diff(src.Commands(), dst.Commands()); diff != "" {
		t.Errorf("playback mismatch (-src +dst):\n%s", diff)
	}
}

func TestPlaybackFailureKeepsBalance(t *testing.T) {
	src := NewRecorder()
	src.Push()
	src.Push()
	_ = src.DrawRect(0, 0, 1, 1)
	src.Pop()
	src.Pop()

	dst := NewRecorder()
	boom := errors.New("boom")
	dst.FailOn(CmdDrawRect, boom)

	err := src.Playback(dst)
	if !errors.Is(err, boom) {
		t.Fatalf("Playback() = %v, want boom", err)
	}
	if want := "record: playback command 2 (DrawRect): boom"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if dst.Depth() != 0 {
		t.Errorf("destination depth = %d after failed playback, want 0", dst.Depth())
	}
}
