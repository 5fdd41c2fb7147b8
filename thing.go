package sketch

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Default geometry of a freshly constructed Thing.
const (
	DefaultWidth       = 50.0
	DefaultHeight      = 50.0
	DefaultBorderWidth = 1.0
)

// Style is the paint configuration shared by every kind of Thing.
type Style struct {
	Fill        gg.RGBA
	Filled      bool
	Border      gg.RGBA
	HasBorder   bool
	BorderWidth float64
}

// DefaultStyle returns the style of a freshly constructed Thing:
// filled opaque black, no border, border width 1.
func DefaultStyle() Style {
	return Style{
		Fill:        DefaultFill,
		Filled:      true,
		Border:      DefaultBorder,
		BorderWidth: DefaultBorderWidth,
	}
}

// payload holds the fields only some kinds use.
type payload struct {
	radius float64 // Circle
	text   string  // Text
	end    gg.Point
	img    *Image
}

// Thing is a drawable shape: one of seven kinds sharing position, style and
// rotation, plus a kind-specific payload.
//
// Things are created with the New* constructors, mutated freely and drawn
// with Add or Draw. A Thing holds no reference to a Surface and none to
// other Things. The zero Thing has KindInvalid and is rejected by Add.
//
// A Thing is not safe for concurrent mutation.
type Thing struct {
	kind     Kind
	pos      gg.Point
	width    float64
	height   float64
	rotation float64
	style    Style
	payload
}

func newThing(kind Kind) *Thing {
	return &Thing{
		kind:   kind,
		width:  DefaultWidth,
		height: DefaultHeight,
		style:  DefaultStyle(),
	}
}

// Kind returns the variant of t.
func (t *Thing) Kind() Kind { return t.kind }

// X returns the x coordinate of t's position.
func (t *Thing) X() float64 { return t.pos.X }

// Y returns the y coordinate of t's position.
func (t *Thing) Y() float64 { return t.pos.Y }

// Position returns t's anchor point. For a Line it is the start point.
func (t *Thing) Position() gg.Point { return t.pos }

// SetX sets the x coordinate.
func (t *Thing) SetX(x float64) { t.pos.X = x }

// SetY sets the y coordinate.
func (t *Thing) SetY(y float64) { t.pos.Y = y }

// SetPosition moves t to (x, y).
func (t *Thing) SetPosition(x, y float64) { t.pos = gg.Pt(x, y) }

// Move shifts t's position by (dx, dy).
// A Line's end point does not move with it.
func (t *Thing) Move(dx, dy float64) {
	t.pos.X += dx
	t.pos.Y += dy
}

// Rotation returns the rotation in radians, pivoted at the position.
func (t *Thing) Rotation() float64 { return t.rotation }

// SetRotation sets the rotation in radians.
func (t *Thing) SetRotation(r float64) { t.rotation = r }

// Rotate adds dr radians to the rotation.
func (t *Thing) Rotate(dr float64) { t.rotation += dr }

// Width returns the width. Circles, Text, Lines and Images keep the
// default but do not use it.
func (t *Thing) Width() float64 { return t.width }

// Height returns the height.
func (t *Thing) Height() float64 { return t.height }

// SetWidth sets the width. The value is not clamped.
func (t *Thing) SetWidth(w float64) { t.width = w }

// SetHeight sets the height. The value is not clamped.
func (t *Thing) SetHeight(h float64) { t.height = h }

// Color returns the fill colour.
func (t *Thing) Color() gg.RGBA { return t.style.Fill }

// SetColor sets the fill colour and turns filling on.
func (t *Thing) SetColor(c gg.RGBA) {
	t.style.Fill = c
	t.style.Filled = true
}

// SetColorString parses s with ParseColor and calls SetColor.
func (t *Thing) SetColorString(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	t.SetColor(c)
	return nil
}

// IsFilled reports whether the shape is filled when drawn.
func (t *Thing) IsFilled() bool { return t.style.Filled }

// SetFilled turns filling on or off without touching the fill colour.
func (t *Thing) SetFilled(filled bool) { t.style.Filled = filled }

// BorderColor returns the border colour.
func (t *Thing) BorderColor() gg.RGBA { return t.style.Border }

// SetBorderColor sets the border colour and enables the border.
func (t *Thing) SetBorderColor(c gg.RGBA) {
	t.style.Border = c
	t.style.HasBorder = true
}

// SetBorderColorString parses s with ParseColor and calls SetBorderColor.
func (t *Thing) SetBorderColorString(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	t.SetBorderColor(c)
	return nil
}

// HasBorder reports whether the outline is stroked when drawn.
func (t *Thing) HasBorder() bool { return t.style.HasBorder }

// SetBorder enables or disables the border.
func (t *Thing) SetBorder(on bool) { t.style.HasBorder = on }

// BorderWidth returns the stroke width of the border.
func (t *Thing) BorderWidth() float64 { return t.style.BorderWidth }

// SetBorderWidth sets the stroke width and enables the border.
// The value is not clamped.
func (t *Thing) SetBorderWidth(w float64) {
	t.style.BorderWidth = w
	t.style.HasBorder = true
}

// Style returns a copy of the shared paint attributes.
func (t *Thing) Style() Style { return t.style }

// SetStyle replaces all paint attributes at once.
func (t *Thing) SetStyle(s Style) { t.style = s }

// Clone returns an independent copy of t. An Image handle is shared, since
// images are immutable once loaded.
func (t *Thing) Clone() *Thing {
	c := *t
	return &c
}

// String returns a short description such as "Circle(r=25) at (150, 75)".
func (t *Thing) String() string {
	if t == nil {
		return "<nil>"
	}
	var geom string
	switch t.kind {
	case KindRectangle, KindTriangle, KindEllipse:
		geom = fmt.Sprintf("(%gx%g)", t.width, t.height)
	case KindCircle:
		geom = fmt.Sprintf("(r=%g)", t.radius)
	case KindText:
		geom = fmt.Sprintf("(%q)", t.text)
	case KindLine:
		geom = fmt.Sprintf("(to %g, %g)", t.end.X, t.end.Y)
	case KindImage:
		geom = fmt.Sprintf("(%s)", t.img.Name())
	}
	return fmt.Sprintf("%s%s at (%g, %g)", t.kind, geom, t.pos.X, t.pos.Y)
}
