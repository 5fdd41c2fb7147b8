package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sketch/record"
	"github.com/gogpu/sketch/scene"
)

// TraceCmd prints the surface calls a scene makes, one per line.
type TraceCmd struct {
	Scene     string `arg:"" type:"existingfile" help:"Scene file (.yaml, .yml, .toml, .json)."`
	DrawsOnly bool   `short:"d" help:"Only print drawing primitives."`
}

// Run implements the trace command.
func (c *TraceCmd) Run(_ *Globals) error {
	return c.trace(os.Stdout)
}

func (c *TraceCmd) trace(w io.Writer) error {
	s, err := scene.Load(c.Scene)
	if err != nil {
		return err
	}
	rec := record.NewRecorder()
	if err := s.Render(rec); err != nil {
		return err
	}

	cmds := rec.Commands()
	if c.DrawsOnly {
		cmds = rec.Draws()
	}
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(w, record.Format(cmd)); err != nil {
			return err
		}
	}
	return nil
}
