package record

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
)

// Recorder is a sketch.Surface that captures every call as a Command.
// It tracks the paint state and transform the way a real surface would,
// and stamps each drawing command with the State it ran under.
//
// Example:
//
//	rec := record.NewRecorder()
//	sketch.Add(rec, circle)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(record.Format(cmd))
//	}
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	state    State
	stack    []State
	failures map[CommandType]error
}

var _ sketch.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder with a Canvas-like initial state:
// white fill, black stroke of width 1, identity transform.
func NewRecorder() *Recorder {
	r := &Recorder{
		commands: make([]Command, 0, 64),
		stack:    make([]State, 0, 8),
	}
	r.state = initialState()
	return r
}

func initialState() State {
	return State{
		Fill:        gg.White,
		FillOn:      true,
		Stroke:      gg.Black,
		StrokeWidth: 1,
		StrokeOn:    true,
		Transform:   gg.Identity(),
	}
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Draws returns only the drawing commands.
func (r *Recorder) Draws() []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type().IsDraw() {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// State returns the current paint state and transform.
func (r *Recorder) State() State { return r.state }

// Depth returns the number of unmatched Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

// Reset drops all commands and returns to the initial state.
// Injected failures are kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stack = r.stack[:0]
	r.state = initialState()
}

// FailOn makes every later drawing command of type t return err after it
// has been recorded. A nil err removes the failure.
func (r *Recorder) FailOn(t CommandType, err error) {
	if r.failures == nil {
		r.failures = make(map[CommandType]error)
	}
	if err == nil {
		delete(r.failures, t)
		return
	}
	r.failures[t] = err
}

func (r *Recorder) add(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) draw(c Command) error {
	r.add(c)
	return r.failures[c.Type()]
}

// Push saves the paint state and transform.
func (r *Recorder) Push() {
	r.add(PushCommand{})
	r.stack = append(r.stack, r.state)
}

// Pop restores the last saved state. An unbalanced Pop is recorded but
// changes nothing.
func (r *Recorder) Pop() {
	r.add(PopCommand{})
	if len(r.stack) == 0 {
		sketch.Logger().Warn("record: unbalanced Pop")
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate implements sketch.Surface.
func (r *Recorder) Translate(dx, dy float64) {
	r.add(TranslateCommand{DX: dx, DY: dy})
	r.state.Transform = r.state.Transform.Multiply(gg.Translate(dx, dy))
}

// Rotate implements sketch.Surface.
func (r *Recorder) Rotate(theta float64) {
	r.add(RotateCommand{Theta: theta})
	r.state.Transform = r.state.Transform.Multiply(gg.Rotate(theta))
}

// SetFillPaint implements sketch.Surface.
func (r *Recorder) SetFillPaint(c gg.RGBA) {
	r.add(SetFillPaintCommand{Color: c})
	r.state.Fill = c
	r.state.FillOn = true
}

// DisableFill implements sketch.Surface.
func (r *Recorder) DisableFill() {
	r.add(DisableFillCommand{})
	r.state.FillOn = false
}

// SetStrokePaint implements sketch.Surface.
func (r *Recorder) SetStrokePaint(c gg.RGBA, width float64) {
	r.add(SetStrokePaintCommand{Color: c, Width: width})
	r.state.Stroke = c
	r.state.StrokeWidth = width
	r.state.StrokeOn = true
}

// DisableStroke implements sketch.Surface.
func (r *Recorder) DisableStroke() {
	r.add(DisableStrokeCommand{})
	r.state.StrokeOn = false
}

// DrawRect implements sketch.Surface.
func (r *Recorder) DrawRect(x, y, w, h float64) error {
	return r.draw(DrawRectCommand{X: x, Y: y, W: w, H: h, State: r.state})
}

// DrawCircle implements sketch.Surface.
func (r *Recorder) DrawCircle(cx, cy, diameter float64) error {
	return r.draw(DrawCircleCommand{CX: cx, CY: cy, Diameter: diameter, State: r.state})
}

// DrawTriangle implements sketch.Surface.
func (r *Recorder) DrawTriangle(p1, p2, p3 gg.Point) error {
	return r.draw(DrawTriangleCommand{P1: p1, P2: p2, P3: p3, State: r.state})
}

// DrawEllipse implements sketch.Surface.
func (r *Recorder) DrawEllipse(cx, cy, w, h float64) error {
	return r.draw(DrawEllipseCommand{CX: cx, CY: cy, W: w, H: h, State: r.state})
}

// DrawText implements sketch.Surface.
func (r *Recorder) DrawText(s string, x, y float64) error {
	return r.draw(DrawTextCommand{Text: s, X: x, Y: y, State: r.state})
}

// DrawLine implements sketch.Surface.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) error {
	return r.draw(DrawLineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, State: r.state})
}

// DrawImage implements sketch.Surface.
func (r *Recorder) DrawImage(img *sketch.Image, x, y float64) error {
	return r.draw(DrawImageCommand{Image: img, X: x, Y: y, State: r.state})
}

// Playback replays the recorded commands onto s in order.
// It stops at the first drawing error, which is wrapped with the index
// of the failing command. Push/Pop balance is preserved on failure.
func (r *Recorder) Playback(s sketch.Surface) error {
	depth := 0
	defer func() {
		for ; depth > 0; depth-- {
			s.Pop()
		}
	}()
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case PushCommand:
			s.Push()
			depth++
		case PopCommand:
			s.Pop()
			if depth > 0 {
				depth--
			}
		case TranslateCommand:
			s.Translate(c.DX, c.DY)
		case RotateCommand:
			s.Rotate(c.Theta)
		case SetFillPaintCommand:
			s.SetFillPaint(c.Color)
		case DisableFillCommand:
			s.DisableFill()
		case SetStrokePaintCommand:
			s.SetStrokePaint(c.Color, c.Width)
		case DisableStrokeCommand:
			s.DisableStroke()
		case DrawRectCommand:
			err = s.DrawRect(c.X, c.Y, c.W, c.H)
		case DrawCircleCommand:
			err = s.DrawCircle(c.CX, c.CY, c.Diameter)
		case DrawTriangleCommand:
			err = s.DrawTriangle(c.P1, c.P2, c.P3)
		case DrawEllipseCommand:
			err = s.DrawEllipse(c.CX, c.CY, c.W, c.H)
		case DrawTextCommand:
			err = s.DrawText(c.Text, c.X, c.Y)
		case DrawLineCommand:
			err = s.DrawLine(c.X1, c.Y1, c.X2, c.Y2)
		case DrawImageCommand:
			err = s.DrawImage(c.Image, c.X, c.Y)
		default:
			err = fmt.Errorf("unknown command %s", cmd.Type())
		}
		if err != nil {
			return fmt.Errorf("record: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
