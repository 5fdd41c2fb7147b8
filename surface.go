package sketch

import "github.com/gogpu/gg"

// Surface is the drawing capability a Thing renders onto.
//
// Paint state (fill, stroke, transform) is ambient: primitives use whatever
// was set last. Push saves all of it and Pop restores it, and Thing.Draw
// always brackets its work in a Push/Pop pair.
//
// Each Draw* primitive fills the shape with the active fill paint and then
// strokes its outline with the active stroke paint. A disabled fill or stroke
// skips that pass. DrawLine only strokes; DrawText and DrawImage ignore the
// stroke paint.
//
// Canvas implements Surface on top of gg.Context; record.Recorder implements
// it by capturing commands.
type Surface interface {
	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(theta float64)

	SetFillPaint(c gg.RGBA)
	DisableFill()
	SetStrokePaint(c gg.RGBA, width float64)
	DisableStroke()

	DrawRect(x, y, w, h float64) error
	DrawCircle(cx, cy, diameter float64) error
	DrawTriangle(p1, p2, p3 gg.Point) error
	DrawEllipse(cx, cy, w, h float64) error
	DrawText(s string, x, y float64) error
	DrawLine(x1, y1, x2, y2 float64) error
	DrawImage(img *Image, x, y float64) error
}
