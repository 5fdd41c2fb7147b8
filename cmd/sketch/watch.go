package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/sketch"
)

// WatchCmd re-renders a scene every time its file changes, until
// interrupted.
type WatchCmd struct {
	Scene  string `arg:"" type:"existingfile" help:"Scene file (.yaml, .yml, .toml, .json)."`
	Output string `short:"o" default:"out.png" help:"Output PNG file."`
}

// Run implements the watch command.
func (c *WatchCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.watch(ctx, g, nil)
}

// watch renders once and then after every change to the scene file.
// rendered, when set, is called after each attempt with its result.
func (c *WatchCmd) watch(ctx context.Context, g *Globals, rendered func(error)) error {
	path, err := filepath.Abs(c.Scene)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of
	// writing to it, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	render := func() {
		err := renderFile(g, path, c.Output)
		if err != nil {
			sketch.Logger().Warn("render failed", "scene", path, "err", err)
		}
		if rendered != nil {
			rendered(err)
		}
	}
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				sketch.Logger().Debug("scene changed", "op", ev.Op.String())
				render()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			sketch.Logger().Warn("watch error", "err", err)
		}
	}
}
