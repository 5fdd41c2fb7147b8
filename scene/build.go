package scene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
)

// Things builds the shapes in order. Images are loaded once per distinct
// source path.
func (s *Scene) Things() ([]*sketch.Thing, error) {
	images := make(map[string]*sketch.Image)
	things := make([]*sketch.Thing, 0, len(s.Shapes))
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		t, err := s.build(sh, images)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d (%s): %w", i, sh.Kind, err)
		}
		things = append(things, t)
	}
	return things, nil
}

// Render builds the shapes and adds them to dst in order.
func (s *Scene) Render(dst sketch.Surface) error {
	things, err := s.Things()
	if err != nil {
		return err
	}
	sketch.Logger().Debug("scene: render", "shapes", len(things))
	return sketch.AddAll(dst, things...)
}

// Canvas builds the shapes, creates a canvas of the scene's size cleared to
// its background, and draws them. The caller closes the canvas.
func (s *Scene) Canvas(opts ...sketch.CanvasOption) (*sketch.Canvas, error) {
	things, err := s.Things()
	if err != nil {
		return nil, err
	}
	bg, err := s.BackgroundColor()
	if err != nil {
		return nil, err
	}
	w, h, err := s.Size(things)
	if err != nil {
		return nil, err
	}
	opts = append([]sketch.CanvasOption{sketch.WithBackground(bg)}, opts...)
	cv, err := sketch.NewCanvas(w, h, opts...)
	if err != nil {
		return nil, err
	}
	if err := sketch.AddAll(cv, things...); err != nil {
		cv.Close()
		return nil, err
	}
	return cv, nil
}

func (s *Scene) build(sh *Shape, images map[string]*sketch.Image) (*sketch.Thing, error) {
	if err := sh.checkFinite(); err != nil {
		return nil, err
	}
	t, err := s.construct(sh, images)
	if err != nil {
		return nil, err
	}
	// A line's position is its start point, set by construct.
	if t.Kind() != sketch.KindLine {
		t.SetPosition(sh.X, sh.Y)
	}
	t.SetRotation(sh.Rotation)

	if sh.Color != "" {
		if err := t.SetColorString(sh.Color); err != nil {
			return nil, err
		}
	}
	if sh.Filled != nil {
		t.SetFilled(*sh.Filled)
	}
	if b := sh.Border; b != nil {
		c := sketch.DefaultBorder
		if b.Color != "" {
			if c, err = sketch.ParseColor(b.Color); err != nil {
				return nil, err
			}
		}
		t.SetBorderColor(c)
		if b.Width != nil {
			t.SetBorderWidth(*b.Width)
		}
	}
	return t, nil
}

func (s *Scene) construct(sh *Shape, images map[string]*sketch.Image) (*sketch.Thing, error) {
	switch strings.ToLower(sh.Kind) {
	case "rectangle", "rect":
		w, h, err := size(sh)
		if err != nil {
			return nil, err
		}
		return sketch.NewRectangle(w, h)
	case "triangle":
		w, h, err := size(sh)
		if err != nil {
			return nil, err
		}
		return sketch.NewTriangle(w, h)
	case "ellipse":
		w, h, err := size(sh)
		if err != nil {
			return nil, err
		}
		return sketch.NewEllipse(w, h)
	case "circle":
		if sh.Radius == nil {
			return nil, missing("radius")
		}
		return sketch.NewCircle(*sh.Radius)
	case "text":
		if sh.Text == nil {
			return nil, missing("text")
		}
		return sketch.NewText(*sh.Text), nil
	case "line":
		if sh.X2 == nil || sh.Y2 == nil {
			return nil, missing("x2 and y2")
		}
		start := gg.Pt(sh.X, sh.Y)
		if sh.X1 != nil {
			start.X = *sh.X1
		}
		if sh.Y1 != nil {
			start.Y = *sh.Y1
		}
		return sketch.NewLine(start.X, start.Y, *sh.X2, *sh.Y2)
	case "image":
		if sh.Src == "" {
			return nil, missing("src")
		}
		img, err := s.image(sh.Src, images)
		if err != nil {
			return nil, err
		}
		return sketch.NewImage(img)
	case "":
		return nil, missing("kind")
	}
	return nil, fmt.Errorf("%w: unknown kind %q", sketch.ErrInvalidArgument, sh.Kind)
}

func (s *Scene) image(src string, images map[string]*sketch.Image) (*sketch.Image, error) {
	path := src
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	if img, ok := images[path]; ok {
		return img, nil
	}
	img, err := sketch.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sketch.ErrInvalidArgument, err)
	}
	images[path] = img
	return img, nil
}

// numField names an optional number of a Shape.
type numField struct {
	name string
	v    *float64
}

// checkFinite rejects NaN and infinite numbers in any field sh sets.
func (sh *Shape) checkFinite() error {
	fields := []numField{
		{"x", &sh.X},
		{"y", &sh.Y},
		{"rotation", &sh.Rotation},
		{"width", sh.Width},
		{"height", sh.Height},
		{"radius", sh.Radius},
		{"x1", sh.X1},
		{"y1", sh.Y1},
		{"x2", sh.X2},
		{"y2", sh.Y2},
	}
	if sh.Border != nil {
		fields = append(fields, numField{"border.width", sh.Border.Width})
	}
	for _, f := range fields {
		if f.v == nil {
			continue
		}
		if err := finite(f.name, *f.v); err != nil {
			return err
		}
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite", sketch.ErrInvalidArgument, field)
	}
	return nil
}

func size(sh *Shape) (w, h float64, err error) {
	if sh.Width == nil || sh.Height == nil {
		return 0, 0, missing("width and height")
	}
	return *sh.Width, *sh.Height, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", sketch.ErrInvalidArgument, field)
}
