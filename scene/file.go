package scene

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
)

// Margin is the padding added around the shapes when a scene does not
// specify its canvas size.
const Margin = 10

// MaxDerivedSize bounds a canvas dimension derived from shape bounds.
const MaxDerivedSize = 16384

// Scene is a decoded scene file.
type Scene struct {
	Width      int     `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height     int     `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Background string  `yaml:"background,omitempty" toml:"background,omitempty" json:"background,omitempty"`
	Shapes     []Shape `yaml:"shapes" toml:"shapes" json:"shapes"`

	// dir resolves relative image paths.
	dir string
}

// Shape describes one sketch.Thing. Which fields are required depends on
// Kind; pointer fields distinguish "absent" from zero.
type Shape struct {
	Kind string `yaml:"kind" toml:"kind" json:"kind"`

	X        float64 `yaml:"x,omitempty" toml:"x,omitempty" json:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty" toml:"y,omitempty" json:"y,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty" toml:"rotation,omitempty" json:"rotation,omitempty"`

	Width  *float64 `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Radius *float64 `yaml:"radius,omitempty" toml:"radius,omitempty" json:"radius,omitempty"`
	Text   *string  `yaml:"text,omitempty" toml:"text,omitempty" json:"text,omitempty"`
	Src    string   `yaml:"src,omitempty" toml:"src,omitempty" json:"src,omitempty"`

	// Line end points. X1/Y1 default to X/Y.
	X1 *float64 `yaml:"x1,omitempty" toml:"x1,omitempty" json:"x1,omitempty"`
	Y1 *float64 `yaml:"y1,omitempty" toml:"y1,omitempty" json:"y1,omitempty"`
	X2 *float64 `yaml:"x2,omitempty" toml:"x2,omitempty" json:"x2,omitempty"`
	Y2 *float64 `yaml:"y2,omitempty" toml:"y2,omitempty" json:"y2,omitempty"`

	Color  string  `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Filled *bool   `yaml:"filled,omitempty" toml:"filled,omitempty" json:"filled,omitempty"`
	Border *Border `yaml:"border,omitempty" toml:"border,omitempty" json:"border,omitempty"`
}

// Border describes a shape's outline. Its presence enables the border.
// Width is stored as given; negative widths are not clamped.
type Border struct {
	Color string   `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Width *float64 `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
}

// Load reads the scene file at path. The format follows the extension.
// Relative image paths resolve against the file's directory.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- scene path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// SetBaseDir sets the directory relative image paths resolve against.
func (s *Scene) SetBaseDir(dir string) { s.dir = dir }

// BaseDir returns the directory relative image paths resolve against.
func (s *Scene) BaseDir() string { return s.dir }

// BackgroundColor parses Background. An empty background is white.
func (s *Scene) BackgroundColor() (gg.RGBA, error) {
	if strings.TrimSpace(s.Background) == "" {
		return gg.White, nil
	}
	c, err := sketch.ParseColor(s.Background)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("scene: background: %w", err)
	}
	return c, nil
}

// Size returns the canvas size. A zero Width or Height is derived from the
// bounds of the shapes plus Margin. A derived dimension larger than
// MaxDerivedSize, or derived from non-finite bounds, fails with
// sketch.ErrInvalidArgument.
func (s *Scene) Size(things []*sketch.Thing) (width, height int, err error) {
	width, height = s.Width, s.Height
	if width > 0 && height > 0 {
		return width, height, nil
	}
	var far gg.Point
	for _, t := range things {
		b := t.Bounds()
		far.X = math.Max(far.X, b.Max.X)
		far.Y = math.Max(far.Y, b.Max.Y)
	}
	if width <= 0 {
		if width, err = derive("width", far.X); err != nil {
			return 0, 0, err
		}
	}
	if height <= 0 {
		if height, err = derive("height", far.Y); err != nil {
			return 0, 0, err
		}
	}
	return width, height, nil
}

func derive(dim string, extent float64) (int, error) {
	v := math.Ceil(extent) + Margin
	if math.IsNaN(v) || v > MaxDerivedSize {
		return 0, fmt.Errorf("scene: %w: derived %s %g exceeds %d; set %s explicitly",
			sketch.ErrInvalidArgument, dim, v, MaxDerivedSize, dim)
	}
	return int(v), nil
}
