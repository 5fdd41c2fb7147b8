// Package record provides a recording sketch.Surface.
//
// A Recorder captures every Surface call as a typed command struct instead of
// rasterizing. Drawing commands carry the State (fill, stroke, transform)
// that was active when they ran, so the effect of a Thing's paint state can
// be inspected without looking at pixels:
//
//	rec := record.NewRecorder()
//	rect, _ := sketch.NewRectangle(50, 50)
//	rect.SetPosition(50, 50)
//	rect.SetColor(gg.Red)
//	sketch.Add(rec, rect)
//
//	draws := rec.Draws()
//	// draws[0] == DrawRectCommand{X: 50, Y: 50, W: 50, H: 50, State: {Fill: red, ...}}
//
// A recording can be replayed onto any other Surface with Playback, and
// Format renders commands as text for tracing.
package record
