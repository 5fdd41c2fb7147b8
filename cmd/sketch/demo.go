package main

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
)

// DemoCmd draws the demo shapes.
type DemoCmd struct {
	Output string `short:"o" default:"demo.png" help:"Output PNG file."`
}

// Run implements the demo command.
func (c *DemoCmd) Run(g *Globals) error {
	bg, err := sketch.ParseColor(g.Background)
	if err != nil {
		return err
	}
	opts, err := g.canvasOptions()
	if err != nil {
		return err
	}
	cv, err := sketch.NewCanvas(g.Width, g.Height, append(opts, sketch.WithBackground(bg))...)
	if err != nil {
		return err
	}
	defer cv.Close()

	if err := drawDemo(cv); err != nil {
		return err
	}
	if err := cv.SavePNG(c.Output); err != nil {
		return err
	}
	sketch.Logger().Info("demo saved", "path", c.Output, "width", cv.Width(), "height", cv.Height())
	return nil
}

// drawDemo draws a red 50x50 rectangle at (50, 50) and a blue circle of
// radius 25 centred at (150, 75).
func drawDemo(s sketch.Surface) error {
	rect, err := sketch.NewRectangle(50, 50)
	if err != nil {
		return err
	}
	rect.SetPosition(50, 50)
	rect.SetColor(gg.Red)
	if err := sketch.Add(s, rect); err != nil {
		return err
	}

	circle, err := sketch.NewCircle(25)
	if err != nil {
		return err
	}
	circle.SetPosition(150, 75)
	circle.SetColor(gg.Blue)
	return sketch.Add(s, circle)
}
