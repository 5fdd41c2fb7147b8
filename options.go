package sketch

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// DefaultFontSize is the text size, in points, used when no face is given.
const DefaultFontSize = 12.0

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	cv, err := sketch.NewCanvas(400, 400,
//	    sketch.WithBackground(sketch.MustColor("220")),
//	    sketch.WithFontSize(16))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background *gg.RGBA
	face       text.Face
	fontSize   float64
	dc         *gg.Context
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		fontSize: DefaultFontSize,
	}
}

// WithBackground clears the canvas to c after creation.
func WithBackground(c gg.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = &c
	}
}

// WithFontFace sets the face Text shapes are drawn with.
// It takes precedence over WithFontSize.
func WithFontFace(face text.Face) CanvasOption {
	return func(o *canvasOptions) {
		o.face = face
	}
}

// WithFontSize sets the size of the built-in Go Regular face.
// Non-positive sizes are ignored.
func WithFontSize(points float64) CanvasOption {
	return func(o *canvasOptions) {
		if points > 0 {
			o.fontSize = points
		}
	}
}

// WithContext draws onto an existing gg context instead of allocating one.
// The width and height passed to NewCanvas are ignored in favour of the
// context's own, and Close leaves the context open.
func WithContext(dc *gg.Context) CanvasOption {
	return func(o *canvasOptions) {
		o.dc = dc
	}
}
