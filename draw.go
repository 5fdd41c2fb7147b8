package sketch

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Add validates t and draws it on s right away. Nothing is retained:
// adding a shape is drawing it once, on the current frame.
//
// A nil surface, a nil Thing or a Thing not built by a constructor fails
// with ErrInvalidArgument. Otherwise the error of the draw is returned.
// Paint state on s is the same after Add as before it.
func Add(s Surface, t *Thing) error {
	if s == nil {
		return invalidArg("Add", "nil surface")
	}
	if t == nil || !t.kind.Valid() {
		return invalidArg("Add", "not a drawable thing")
	}
	Logger().Debug("sketch: add", "kind", t.kind, "x", t.pos.X, "y", t.pos.Y)
	return t.Draw(s)
}

// AddAll adds things in order and stops at the first failure.
func AddAll(s Surface, things ...*Thing) error {
	for i, t := range things {
		if err := Add(s, t); err != nil {
			return fmt.Errorf("sketch: thing %d: %w", i, err)
		}
	}
	return nil
}

// Draw renders t on s with exactly one primitive call, inside a
// Push/Pop pair that carries t's paint state and rotation.
func (t *Thing) Draw(s Surface) error {
	if t == nil || !t.kind.Valid() {
		return invalidArg("Draw", "not a drawable thing")
	}
	if s == nil {
		return invalidArg("Draw", "nil surface")
	}
	return t.withPaint(s, func() error {
		return t.primitive(s)
	})
}

// withPaint installs t's paint state on s, runs draw and restores the
// previous state. Pop is deferred so a failing or panicking draw cannot
// leak a rotation onto the next shape.
func (t *Thing) withPaint(s Surface, draw func() error) error {
	s.Push()
	defer s.Pop()

	if t.style.Filled {
		s.SetFillPaint(t.style.Fill)
	} else {
		s.DisableFill()
	}
	if t.style.HasBorder {
		s.SetStrokePaint(t.style.Border, t.style.BorderWidth)
	} else {
		s.DisableStroke()
	}
	if t.rotation != 0 {
		s.Translate(t.pos.X, t.pos.Y)
		s.Rotate(t.rotation)
		s.Translate(-t.pos.X, -t.pos.Y)
	}
	return draw()
}

func (t *Thing) primitive(s Surface) error {
	x, y := t.pos.X, t.pos.Y
	switch t.kind {
	case KindRectangle:
		return s.DrawRect(x, y, t.width, t.height)
	case KindCircle:
		return s.DrawCircle(x, y, t.radius*2)
	case KindTriangle:
		return s.DrawTriangle(
			gg.Pt(x, y),
			gg.Pt(x+t.width, y),
			gg.Pt(x+t.width/2, y-t.height),
		)
	case KindEllipse:
		return s.DrawEllipse(x, y, t.width, t.height)
	case KindText:
		return s.DrawText(t.text, x, y)
	case KindLine:
		return s.DrawLine(x, y, t.end.X, t.end.Y)
	case KindImage:
		return s.DrawImage(t.img, x, y)
	}
	return invalidArg("Draw", "unknown kind "+t.kind.String())
}
