package sketch

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Default colours of a freshly constructed Thing.
var (
	DefaultFill   = gg.Black
	DefaultBorder = gg.Black
)

var folder = cases.Fold()

// ParseColor converts a colour description to gg.RGBA.
//
// Accepted forms:
//   - SVG/CSS colour names ("red", "CornflowerBlue"), case-insensitive
//   - "transparent"
//   - hex with optional '#': "RGB", "RGBA", "RRGGBB", "RRGGBBAA"
//   - a grey level 0..255 ("220")
//
// Anything else fails with ErrInvalidArgument.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return gg.RGBA{}, invalidArg("ParseColor", "empty colour")
	}

	name := folder.String(s)
	if name == "transparent" {
		return gg.Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return gg.FromColor(c), nil
	}

	// Bare decimals of up to three digits are grey levels, not hex.
	if len(s) <= 3 {
		if level, err := strconv.Atoi(s); err == nil {
			if level < 0 || level > 255 {
				return gg.RGBA{}, invalidArg("ParseColor", "grey level "+s+" out of range 0..255")
			}
			v := float64(level) / 255
			return gg.RGB(v, v, v), nil
		}
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, invalidArg("ParseColor", "unknown colour "+strconv.Quote(s))
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, invalidArg("ParseColor", "unknown colour "+strconv.Quote(s))
		}
	}
	return gg.Hex(hex), nil
}

// MustColor is like ParseColor but panics on error.
// It is meant for package-level colour tables and tests.
func MustColor(s string) gg.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
