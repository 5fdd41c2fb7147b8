package sketch

import (
	"math"

	"github.com/gogpu/gg"
)

// NewRectangle returns an axis-aligned rectangle with its top-left corner at
// the position. Negative sizes are clamped to 0.
func NewRectangle(width, height float64) (*Thing, error) {
	return newSized(KindRectangle, "NewRectangle", width, height)
}

// NewTriangle returns an isosceles triangle whose base runs from the
// position to the right by width and whose apex sits height above the
// middle of the base. Negative sizes are clamped to 0.
func NewTriangle(width, height float64) (*Thing, error) {
	return newSized(KindTriangle, "NewTriangle", width, height)
}

// NewEllipse returns an ellipse centred at the position with the given
// extents. Negative sizes are clamped to 0.
func NewEllipse(width, height float64) (*Thing, error) {
	return newSized(KindEllipse, "NewEllipse", width, height)
}

func newSized(kind Kind, op string, width, height float64) (*Thing, error) {
	if err := requireFinite(op, width, height); err != nil {
		return nil, err
	}
	t := newThing(kind)
	t.width = math.Max(0, width)
	t.height = math.Max(0, height)
	return t, nil
}

// NewCircle returns a circle centred at the position.
// A negative radius is clamped to 0.
func NewCircle(radius float64) (*Thing, error) {
	if err := requireFinite("NewCircle", radius); err != nil {
		return nil, err
	}
	t := newThing(KindCircle)
	t.radius = math.Max(0, radius)
	return t, nil
}

// NewText returns a text shape whose baseline starts at the position.
func NewText(s string) *Thing {
	t := newThing(KindText)
	t.text = s
	return t
}

// NewLine returns a segment from (x1, y1) to (x2, y2). The start point is
// the shape's position, so SetPosition and Move only affect the start.
func NewLine(x1, y1, x2, y2 float64) (*Thing, error) {
	if err := requireFinite("NewLine", x1, y1, x2, y2); err != nil {
		return nil, err
	}
	t := newThing(KindLine)
	t.pos = gg.Pt(x1, y1)
	t.end = gg.Pt(x2, y2)
	return t, nil
}

// NewImage returns an image shape drawn with its top-left corner at the
// position. img must be a successfully loaded handle.
func NewImage(img *Image) (*Thing, error) {
	if !img.Loaded() {
		return nil, invalidArg("NewImage", "requires a loaded image")
	}
	t := newThing(KindImage)
	t.img = img
	return t, nil
}

func requireFinite(op string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidArg(op, "requires finite numbers")
		}
	}
	return nil
}

// wrongKind logs a variant accessor used on another kind.
func (t *Thing) wrongKind(op string, want Kind) {
	Logger().Warn("sketch: variant setter on wrong kind",
		"op", op, "want", want, "got", t.kind)
}

// Radius returns a Circle's radius, or 0 for other kinds.
func (t *Thing) Radius() float64 {
	if t.kind != KindCircle {
		return 0
	}
	return t.radius
}

// SetRadius sets a Circle's radius. The value is not clamped.
func (t *Thing) SetRadius(r float64) {
	if t.kind != KindCircle {
		t.wrongKind("SetRadius", KindCircle)
		return
	}
	t.radius = r
}

// Text returns a Text shape's string, or "" for other kinds.
func (t *Thing) Text() string {
	if t.kind != KindText {
		return ""
	}
	return t.text
}

// SetText replaces a Text shape's string.
func (t *Thing) SetText(s string) {
	if t.kind != KindText {
		t.wrongKind("SetText", KindText)
		return
	}
	t.text = s
}

// Start returns a Line's start point, which is its position.
func (t *Thing) Start() gg.Point {
	if t.kind != KindLine {
		return gg.Point{}
	}
	return t.pos
}

// SetStart moves a Line's start point.
func (t *Thing) SetStart(p gg.Point) {
	if t.kind != KindLine {
		t.wrongKind("SetStart", KindLine)
		return
	}
	t.pos = p
}

// End returns a Line's end point.
func (t *Thing) End() gg.Point {
	if t.kind != KindLine {
		return gg.Point{}
	}
	return t.end
}

// SetEnd moves a Line's end point.
func (t *Thing) SetEnd(p gg.Point) {
	if t.kind != KindLine {
		t.wrongKind("SetEnd", KindLine)
		return
	}
	t.end = p
}

// Image returns an Image shape's handle, or nil for other kinds.
func (t *Thing) Image() *Image {
	if t.kind != KindImage {
		return nil
	}
	return t.img
}

// SetImage replaces an Image shape's handle. Unloaded handles are rejected.
func (t *Thing) SetImage(img *Image) error {
	if t.kind != KindImage {
		t.wrongKind("SetImage", KindImage)
		return invalidArg("SetImage", "not an Image shape")
	}
	if !img.Loaded() {
		return invalidArg("SetImage", "requires a loaded image")
	}
	t.img = img
	return nil
}
