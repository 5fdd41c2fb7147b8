package main

import (
	"fmt"
	"os"

	"github.com/gogpu/sketch/scene"
)

// ConvertCmd re-encodes a scene file.
type ConvertCmd struct {
	Scene  string `arg:"" type:"existingfile" help:"Input scene file."`
	Output string `arg:"" help:"Output scene file; the format follows the extension."`
}

// Run implements the convert command.
func (c *ConvertCmd) Run(_ *Globals) error {
	s, err := scene.Load(c.Scene)
	if err != nil {
		return err
	}
	// Validate before writing, so a broken scene is not propagated.
	if _, err := s.Things(); err != nil {
		return err
	}
	format, err := scene.FormatFromPath(c.Output)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	if err := s.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
