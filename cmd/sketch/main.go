// Command sketch draws sketch shapes to PNG files.
//
// Usage:
//
//	sketch demo -o demo.png           # the two-shape demo
//	sketch render scene.yaml -o out.png
//	sketch trace scene.yaml           # print the surface calls
//	sketch watch scene.yaml -o out.png
//	sketch convert scene.yaml scene.toml
//
// Defaults for the global flags are read from
// $XDG_CONFIG_HOME/sketch/config.toml when it exists.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/sketch"
)

// Globals are the flags shared by every command.
type Globals struct {
	Width      int     `default:"${width}" help:"Canvas width for the demo and for scenes without one."`
	Height     int     `default:"${height}" help:"Canvas height for the demo and for scenes without one."`
	Background string  `default:"${background}" help:"Background colour for the demo: a name, hex or grey level."`
	Font       string  `default:"${font}" help:"TTF/OTF font for text shapes. Go Regular when empty."`
	FontSize   float64 `default:"${font_size}" help:"Font size in points."`
	LogLevel   string  `default:"${log_level}" enum:"debug,info,warn,error" help:"Log level (${enum})."`
}

// CLI is the command line of sketch.
type CLI struct {
	Globals

	Demo    DemoCmd    `cmd:"" help:"Draw the rectangle-and-circle demo."`
	Render  RenderCmd  `cmd:"" help:"Render a scene file to PNG."`
	Trace   TraceCmd   `cmd:"" help:"Print the drawing calls a scene makes."`
	Watch   WatchCmd   `cmd:"" help:"Re-render a scene file whenever it changes."`
	Convert ConvertCmd `cmd:"" help:"Re-encode a scene file in another format."`
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sketch"),
		kong.Description("Draw retained-attribute shapes with gg."),
		kong.UsageOnError(),
		cfg.Vars(),
	)

	sketch.SetLogger(newLogger(cli.LogLevel))
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// canvasOptions turns the font flags into canvas options.
func (g *Globals) canvasOptions() ([]sketch.CanvasOption, error) {
	if g.Font == "" {
		return []sketch.CanvasOption{sketch.WithFontSize(g.FontSize)}, nil
	}
	src, err := text.NewFontSourceFromFile(g.Font)
	if err != nil {
		return nil, err
	}
	return []sketch.CanvasOption{sketch.WithFontFace(src.Face(g.FontSize))}, nil
}

func itoa(n int) string { return strconv.Itoa(n) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
