package sketch

import (
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// paintState is the fill and stroke configuration a Canvas applies to each
// primitive. gg shares one brush between fill and stroke, so Canvas keeps
// both colours itself and sets the brush before each pass.
type paintState struct {
	fill        gg.RGBA
	fillOn      bool
	stroke      gg.RGBA
	strokeWidth float64
	strokeOn    bool
}

// Canvas is a Surface backed by a gg.Context.
//
// A new Canvas fills with white and strokes with black at width 1, so
// primitives drawn outside of a Thing are visible.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc     *gg.Context
	ownsDC bool
	face   text.Face
	paint  paintState
	stack  []paintState
}

var _ Surface = (*Canvas)(nil)
var _ io.Closer = (*Canvas)(nil)

// NewCanvas creates a width x height canvas.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		dc: o.dc,
		paint: paintState{
			fill:        gg.White,
			fillOn:      true,
			stroke:      gg.Black,
			strokeWidth: 1,
			strokeOn:    true,
		},
		stack: make([]paintState, 0, 8),
	}
	if c.dc == nil {
		if width <= 0 || height <= 0 {
			return nil, invalidArg("NewCanvas", "requires a positive size")
		}
		c.dc = gg.NewContext(width, height)
		c.ownsDC = true
	}

	c.face = o.face
	if c.face == nil {
		src, err := defaultFontSource()
		if err != nil {
			return nil, err
		}
		c.face = src.Face(o.fontSize)
	}
	c.dc.SetFont(c.face)

	if o.background != nil {
		c.Clear(*o.background)
	}
	return c, nil
}

var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// defaultFontSource returns the shared Go Regular font source.
func defaultFontSource() (*text.FontSource, error) {
	return defaultFont()
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Font returns the face used for Text shapes.
func (c *Canvas) Font() text.Face { return c.face }

// Transform returns the current transformation matrix.
func (c *Canvas) Transform() gg.Matrix { return c.dc.GetTransform() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col gg.RGBA) { c.dc.ClearWithColor(col) }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the gg context if the canvas created it.
// Close is idempotent.
func (c *Canvas) Close() error {
	if !c.ownsDC {
		return nil
	}
	return c.dc.Close()
}

// Push saves the transform and the fill/stroke configuration.
func (c *Canvas) Push() {
	c.dc.Push()
	c.stack = append(c.stack, c.paint)
}

// Pop restores what the matching Push saved. Unbalanced calls are ignored.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.paint = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) { c.dc.Translate(dx, dy) }

// Rotate rotates the coordinate frame by theta radians.
func (c *Canvas) Rotate(theta float64) { c.dc.Rotate(theta) }

// SetFillPaint enables filling with col.
func (c *Canvas) SetFillPaint(col gg.RGBA) {
	c.paint.fill = col
	c.paint.fillOn = true
}

// DisableFill turns filling off.
func (c *Canvas) DisableFill() { c.paint.fillOn = false }

// SetStrokePaint enables stroking with col at the given width.
func (c *Canvas) SetStrokePaint(col gg.RGBA, width float64) {
	c.paint.stroke = col
	c.paint.strokeWidth = width
	c.paint.strokeOn = true
}

// DisableStroke turns stroking off.
func (c *Canvas) DisableStroke() { c.paint.strokeOn = false }

// DrawRect draws a rectangle with its top-left corner at (x, y).
func (c *Canvas) DrawRect(x, y, w, h float64) error {
	c.dc.DrawRectangle(x, y, w, h)
	return c.finishPath()
}

// DrawCircle draws a circle centred at (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, diameter float64) error {
	c.dc.DrawCircle(cx, cy, diameter/2)
	return c.finishPath()
}

// DrawTriangle draws the closed triangle p1, p2, p3.
func (c *Canvas) DrawTriangle(p1, p2, p3 gg.Point) error {
	c.dc.MoveTo(p1.X, p1.Y)
	c.dc.LineTo(p2.X, p2.Y)
	c.dc.LineTo(p3.X, p3.Y)
	c.dc.ClosePath()
	return c.finishPath()
}

// DrawEllipse draws an ellipse centred at (cx, cy) with the given extents.
func (c *Canvas) DrawEllipse(cx, cy, w, h float64) error {
	c.dc.DrawEllipse(cx, cy, w/2, h/2)
	return c.finishPath()
}

// DrawLine strokes a segment. With stroking disabled nothing is drawn.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) error {
	if !c.paint.strokeOn {
		return nil
	}
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.strokePath()
}

// DrawText draws s with its baseline starting at (x, y) in the fill colour.
// With filling disabled nothing is drawn.
func (c *Canvas) DrawText(s string, x, y float64) error {
	if !c.paint.fillOn {
		return nil
	}
	c.dc.SetFillBrush(gg.Solid(c.paint.fill))
	c.dc.DrawString(s, x, y)
	return nil
}

// DrawImage draws img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img *Image, x, y float64) error {
	if !img.Loaded() {
		return invalidArg("DrawImage", "requires a loaded image")
	}
	c.dc.DrawImage(img.Buf(), x, y)
	return nil
}

// finishPath fills and then strokes the current path as configured,
// leaving the path empty.
func (c *Canvas) finishPath() error {
	p := c.paint
	switch {
	case p.fillOn && p.strokeOn:
		c.dc.SetFillBrush(gg.Solid(p.fill))
		if err := c.dc.FillPreserve(); err != nil {
			c.dc.ClearPath()
			return err
		}
		return c.strokePath()
	case p.fillOn:
		c.dc.SetFillBrush(gg.Solid(p.fill))
		return c.dc.Fill()
	case p.strokeOn:
		return c.strokePath()
	}
	c.dc.ClearPath()
	return nil
}

func (c *Canvas) strokePath() error {
	c.dc.SetStrokeBrush(gg.Solid(c.paint.stroke))
	c.dc.SetLineWidth(c.paint.strokeWidth)
	return c.dc.Stroke()
}
