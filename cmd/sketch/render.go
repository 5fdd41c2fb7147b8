package main

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/scene"
)

// RenderCmd renders a scene file to PNG.
type RenderCmd struct {
	Scene  string `arg:"" type:"existingfile" help:"Scene file (.yaml, .yml, .toml, .json)."`
	Output string `short:"o" default:"out.png" help:"Output PNG file."`
}

// Run implements the render command.
func (c *RenderCmd) Run(g *Globals) error {
	return renderFile(g, c.Scene, c.Output)
}

// renderFile loads a scene and writes it as PNG. Scenes without a size
// take it from the global flags.
func renderFile(g *Globals, path, output string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	if s.Width == 0 {
		s.Width = g.Width
	}
	if s.Height == 0 {
		s.Height = g.Height
	}
	opts, err := g.canvasOptions()
	if err != nil {
		return err
	}
	cv, err := s.Canvas(opts...)
	if err != nil {
		return err
	}
	defer cv.Close()

	if err := cv.SavePNG(output); err != nil {
		return err
	}
	sketch.Logger().Info("scene rendered", "scene", path, "path", output,
		"shapes", len(s.Shapes))
	return nil
}
