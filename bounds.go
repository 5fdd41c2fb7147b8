package sketch

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	Min, Max gg.Point
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest Rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: gg.Pt(math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)),
		Max: gg.Pt(math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)),
	}
}

// Bounds returns the box covered by t's unrotated geometry, ignoring the
// border width. Text has no font at this layer, so its bounds collapse to
// the anchor point.
func (t *Thing) Bounds() Rect {
	x, y := t.pos.X, t.pos.Y
	switch t.kind {
	case KindRectangle:
		return rectOf(x, y, x+t.width, y+t.height)
	case KindCircle:
		return rectOf(x-t.radius, y-t.radius, x+t.radius, y+t.radius)
	case KindTriangle:
		return rectOf(x, y-t.height, x+t.width, y)
	case KindEllipse:
		return rectOf(x-t.width/2, y-t.height/2, x+t.width/2, y+t.height/2)
	case KindLine:
		return rectOf(x, y, t.end.X, t.end.Y)
	case KindImage:
		return rectOf(x, y, x+float64(t.img.Width()), y+float64(t.img.Height()))
	}
	return rectOf(x, y, x, y)
}

// rectOf normalises two corners, so negative sizes set after construction
// still produce Min <= Max.
func rectOf(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: gg.Pt(math.Min(x0, x1), math.Min(y0, y1)),
		Max: gg.Pt(math.Max(x0, x1), math.Max(y0, y1)),
	}
}
