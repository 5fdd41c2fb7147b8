package scene

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThings(t *testing.T) {
	things, err := demoScene().Things()
	require.NoError(t, err)
	require.Len(t, things, 2)

	rect, circle := things[0], things[1]
	assert.Equal(t, sketch.KindRectangle, rect.Kind())
	assert.Equal(t, gg.Pt(50, 50), rect.Position())
	assert.Equal(t, 50.0, rect.Width())
	assert.Equal(t, gg.Red, rect.Color())
	assert.False(t, rect.HasBorder())

	assert.Equal(t, sketch.KindCircle, circle.Kind())
	assert.Equal(t, 25.0, circle.Radius())
	assert.True(t, circle.HasBorder())
	assert.Equal(t, 2.0, circle.BorderWidth())
}

func TestThingsAllKinds(t *testing.T) {
	s := &Scene{Shapes: []Shape{
		{Kind: "Rect", Width: ptr(1.0), Height: ptr(2.0)},
		{Kind: "triangle", Width: ptr(3.0), Height: ptr(4.0), Rotation: 0.5},
		{Kind: "ellipse", Width: ptr(5.0), Height: ptr(6.0), Filled: ptr(false)},
		{Kind: "text", X: 1, Y: 2, Text: ptr("hello")},
		{Kind: "line", X: 1, Y: 2, X2: ptr(3.0), Y2: ptr(4.0)},
		{Kind: "line", X1: ptr(7.0), Y1: ptr(8.0), X2: ptr(9.0), Y2: ptr(10.0), Border: &Border{}},
	}}

	things, err := s.Things()
	require.NoError(t, err)

	kinds := make([]sketch.Kind, len(things))
	for i, th := range things {
		kinds[i] = th.Kind()
	}
	assert.Equal(t, []sketch.Kind{
		sketch.KindRectangle, sketch.KindTriangle, sketch.KindEllipse,
		sketch.KindText, sketch.KindLine, sketch.KindLine,
	}, kinds)

	assert.Equal(t, 0.5, things[1].Rotation())
	assert.False(t, things[2].IsFilled())
	assert.Equal(t, "hello", things[3].Text())
	assert.Equal(t, gg.Pt(1, 2), things[4].Start())
	assert.Equal(t, gg.Pt(3, 4), things[4].End())
	assert.Equal(t, gg.Pt(7, 8), things[5].Start())
	assert.Equal(t, sketch.DefaultBorder, things[5].BorderColor())
	assert.True(t, things[5].HasBorder())
}

func TestThingsErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		msg   string
	}{
		{"missing kind", Shape{}, "missing kind"},
		{"unknown kind", Shape{Kind: "hexagon"}, `unknown kind "hexagon"`},
		{"rect without height", Shape{Kind: "rectangle", Width: ptr(1.0)}, "missing width and height"},
		{"circle without radius", Shape{Kind: "circle"}, "missing radius"},
		{"text without text", Shape{Kind: "text"}, "missing text"},
		{"line without end", Shape{Kind: "line", X2: ptr(1.0)}, "missing x2 and y2"},
		{"image without src", Shape{Kind: "image"}, "missing src"},
		{"bad colour", Shape{Kind: "circle", Radius: ptr(1.0), Color: "nope"}, "nope"},
		{"bad border colour", Shape{Kind: "circle", Radius: ptr(1.0), Border: &Border{Color: "nope"}}, "nope"},
		{"missing image", Shape{Kind: "image", Src: "absent.png"}, "absent.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{Shapes: []Shape{
				{Kind: "circle", Radius: ptr(1.0)},
				tt.shape,
			}}
			s.SetBaseDir(t.TempDir())

			_, err := s.Things()
			require.Error(t, err)
			assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
			assert.True(t, strings.HasPrefix(err.Error(), "scene: shape 1 "), err.Error())
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestThingsRejectsNonFinite(t *testing.T) {
	tests := []struct {
		field string
		shape string
	}{
		{"x", "{kind: rectangle, width: 5, height: 5, x: .nan}"},
		{"y", "{kind: rectangle, width: 5, height: 5, y: -.inf}"},
		{"rotation", "{kind: circle, radius: 1, rotation: .inf}"},
		{"width", "{kind: ellipse, width: .nan, height: 5}"},
		{"height", "{kind: triangle, width: 5, height: .inf}"},
		{"radius", "{kind: circle, radius: .nan}"},
		{"x1", "{kind: line, x1: .nan, x2: 1, y2: 1}"},
		{"y1", "{kind: line, y1: .inf, x2: 1, y2: 1}"},
		{"x2", "{kind: line, x2: -.inf, y2: 1}"},
		{"y2", "{kind: line, x2: 1, y2: .nan}"},
		{"border.width", "{kind: circle, radius: 1, border: {width: .nan}}"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			src := "shapes:\n  - {kind: circle, radius: 1}\n  - " + tt.shape + "\n"
			s, err := Decode(strings.NewReader(src), FormatYAML)
			require.NoError(t, err)

			_, err = s.Things()
			require.Error(t, err)
			assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
			assert.True(t, strings.HasPrefix(err.Error(), "scene: shape 1 "), err.Error())
			assert.Contains(t, err.Error(), tt.field+" is not finite")

			rec := record.NewRecorder()
			assert.Error(t, s.Render(rec))
			assert.Empty(t, rec.Commands())
		})
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadResolvesImagesRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0o755))
	writePNG(t, filepath.Join(dir, "img", "dot.png"), 3, 2, color.NRGBA{0, 255, 0, 255})

	path := filepath.Join(dir, "scene.yaml")
	src := "shapes:\n" +
		"  - kind: image\n    src: img/dot.png\n    x: 1\n    y: 1\n" +
		"  - kind: image\n    src: img/dot.png\n    x: 5\n    y: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, s.BaseDir())

	things, err := s.Things()
	require.NoError(t, err)
	require.Len(t, things, 2)
	assert.Equal(t, 3, things[0].Image().Width())
	assert.Same(t, things[0].Image(), things[1].Image(), "images are loaded once per path")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "scene.ini"))
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"shapes": 3}`), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
	assert.Contains(t, err.Error(), bad)
}

func TestSize(t *testing.T) {
	s := &Scene{Shapes: []Shape{
		{Kind: "rectangle", X: 10, Y: 20, Width: ptr(30.0), Height: ptr(40.0)},
		{Kind: "circle", X: 100, Y: 10, Radius: ptr(5.5)},
	}}
	things, err := s.Things()
	require.NoError(t, err)

	w, h, err := s.Size(things)
	require.NoError(t, err)
	assert.Equal(t, 106+Margin, w)
	assert.Equal(t, 60+Margin, h)

	s.Width = 300
	w, h, err = s.Size(things)
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 60+Margin, h)

	s.Height = 50
	w, h, err = s.Size(things)
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 50, h)
}

func TestSizeLimitsDerivedDimensions(t *testing.T) {
	far := &Scene{Shapes: []Shape{
		{Kind: "rectangle", X: 1e12, Y: 1e12, Width: ptr(5.0), Height: ptr(5.0)},
	}}
	things, err := far.Things()
	require.NoError(t, err)

	_, _, err = far.Size(things)
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "derived width")

	_, err = far.Canvas()
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)

	// Only the derived dimension is checked.
	far.Width = 100
	_, _, err = far.Size(things)
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "derived height")

	far.Height = 100
	w, h, err := far.Size(things)
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)

	edge := &Scene{Shapes: []Shape{
		{Kind: "rectangle", Width: ptr(float64(MaxDerivedSize - Margin)), Height: ptr(1.0)},
	}}
	things, err = edge.Things()
	require.NoError(t, err)
	w, _, err = edge.Size(things)
	require.NoError(t, err)
	assert.Equal(t, MaxDerivedSize, w)
}

func TestSizeRejectsNonFiniteBounds(t *testing.T) {
	r, err := sketch.NewRectangle(5, 5)
	require.NoError(t, err)
	r.SetPosition(math.NaN(), 0)

	_, _, err = (&Scene{}).Size([]*sketch.Thing{r})
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
}

func TestBackgroundColor(t *testing.T) {
	c, err := (&Scene{}).BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, gg.White, c)

	c, err = (&Scene{Background: "blue"}).BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, gg.Blue, c)

	_, err = (&Scene{Background: "nope"}).BackgroundColor()
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
}

func TestRender(t *testing.T) {
	rec := record.NewRecorder()
	require.NoError(t, demoScene().Render(rec))

	var lines []string
	for _, cmd := range rec.Draws() {
		lines = append(lines, record.Format(cmd))
	}
	assert.Equal(t, []string{
		"DrawRect(50, 50, 50, 50) fill=#ff0000ff",
		"DrawCircle(150, 75, 50) fill=#0000ffff stroke=#000000ff/2",
	}, lines)
	assert.Zero(t, rec.Depth())
}

func TestRenderStopsOnBuildError(t *testing.T) {
	rec := record.NewRecorder()
	s := &Scene{Shapes: []Shape{{Kind: "circle", Radius: ptr(1.0)}, {Kind: "blob"}}}

	err := s.Render(rec)
	assert.ErrorIs(t, err, sketch.ErrInvalidArgument)
	assert.Empty(t, rec.Commands(), "nothing is drawn when the scene does not build")
}

func TestCanvas(t *testing.T) {
	cv, err := demoScene().Canvas()
	require.NoError(t, err)
	defer cv.Close()

	assert.Equal(t, 200, cv.Width())
	assert.Equal(t, 200, cv.Height())

	px := color.NRGBAModel.Convert(cv.Image().At(75, 75)).(color.NRGBA)
	assert.InDelta(t, 255, int(px.R), 2)
	assert.InDelta(t, 0, int(px.G), 2)

	bg := color.NRGBAModel.Convert(cv.Image().At(5, 5)).(color.NRGBA)
	assert.InDelta(t, 220, int(bg.R), 2)
}
