// Package scene builds sketch shapes from declarative scene files.
//
// A scene is a canvas size, a background colour and an ordered list of shape
// descriptions. Scenes are read from YAML, TOML or JSON:
//
//	width: 400
//	height: 400
//	background: "220"
//	shapes:
//	  - kind: rectangle
//	    width: 50
//	    height: 50
//	    x: 50
//	    y: 50
//	    color: red
//	  - kind: circle
//	    radius: 25
//	    x: 150
//	    y: 75
//	    color: blue
//
// Descriptions are untyped input, so every problem (unknown kind, missing
// required field, non-finite number, bad colour, unreadable image) is
// reported as an error wrapping sketch.ErrInvalidArgument and naming the
// shape index.
//
// A scene without a width or height gets one derived from its shapes,
// up to MaxDerivedSize.
package scene
