// Package sketch provides retained-attribute shapes on top of gg's
// immediate-mode drawing API.
//
// # Overview
//
// A Thing is one of seven kinds of shape (rectangle, circle, triangle,
// ellipse, text, line, image). It stores a position, fill and border colours,
// a border width and a rotation, and draws itself with a single primitive
// call on a Surface. Mutating a Thing between draws changes how it looks the
// next time it is drawn; nothing else needs updating.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	cv, _ := sketch.NewCanvas(400, 400, sketch.WithBackground(sketch.MustColor("220")))
//	defer cv.Close()
//
//	rect, _ := sketch.NewRectangle(50, 50)
//	rect.SetPosition(50, 50)
//	rect.SetColor(gg.Red)
//	if err := sketch.Add(cv, rect); err != nil {
//	    log.Fatal(err)
//	}
//
//	cv.SavePNG("sketch.png")
//
// # Drawing Model
//
// Add draws immediately; there is no scene graph. Every draw runs inside a
// Push/Pop pair on the surface: the fill, stroke and rotation of the shape
// are installed after Push and dropped by a deferred Pop, so one shape's
// paint state never leaks onto the next.
//
// The surface is always an explicit argument. Canvas draws with gg;
// package record captures the same calls as commands for inspection and
// replay; package scene builds Things from YAML, TOML or JSON files.
//
// # Errors
//
// All validation failures wrap ErrInvalidArgument. Errors from the drawing
// engine are returned unchanged.
//
// # Coordinate System
//
// As in gg: origin top-left, x to the right, y down, angles in radians.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
