package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("scene: %w: unknown scene format %q", sketch.ErrInvalidArgument, filepath.Ext(path))
}

// Decode reads a scene in the given format. Unknown fields are rejected.
// Decode does not build shapes; see Things.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&s)
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&s)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	default:
		return nil, fmt.Errorf("scene: %w: unknown scene format %q", sketch.ErrInvalidArgument, format)
	}
	if errors.Is(err, io.EOF) {
		err = errors.New("empty scene")
	}
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w: %w", format, sketch.ErrInvalidArgument, err)
	}
	return &s, nil
}

// Encode writes s in the given format.
func (s *Scene) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(s); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	default:
		return fmt.Errorf("scene: %w: unknown scene format %q", sketch.ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("scene: encode %s: %w", format, err)
	}
	return nil
}
