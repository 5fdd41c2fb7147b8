package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the defaults for the global flags.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Font       string  `toml:"font"`
	FontSize   float64 `toml:"font_size"`
	LogLevel   string  `toml:"log_level"`
}

// DefaultConfig matches the 400x400 grey-220 canvas of the demo.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Background: "220",
		FontSize:   12,
		LogLevel:   "warn",
	}
}

// LoadConfig reads sketch/config.toml from the XDG config directories over
// the defaults. A missing file is not an error.
func LoadConfig() (Config, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("sketch", "config.toml"))
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Vars exposes the config as kong interpolation variables for flag defaults.
func (c Config) Vars() kong.Vars {
	return kong.Vars{
		"width":      itoa(c.Width),
		"height":     itoa(c.Height),
		"background": c.Background,
		"font":       c.Font,
		"font_size":  ftoa(c.FontSize),
		"log_level":  c.LogLevel,
	}
}
