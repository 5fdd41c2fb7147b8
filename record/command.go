package record

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one sketch.Surface method.
type CommandType uint8

const (
	// State commands
	CmdPush      CommandType = iota // Save paint state and transform
	CmdPop                          // Restore paint state and transform
	CmdTranslate                    // Translate the coordinate frame
	CmdRotate                       // Rotate the coordinate frame

	// Paint commands
	CmdSetFillPaint   // Enable fill with a colour
	CmdDisableFill    // Disable fill
	CmdSetStrokePaint // Enable stroke with a colour and width
	CmdDisableStroke  // Disable stroke

	// Drawing commands
	CmdDrawRect
	CmdDrawCircle
	CmdDrawTriangle
	CmdDrawEllipse
	CmdDrawText
	CmdDrawLine
	CmdDrawImage
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPush:           "Push",
	CmdPop:            "Pop",
	CmdTranslate:      "Translate",
	CmdRotate:         "Rotate",
	CmdSetFillPaint:   "SetFillPaint",
	CmdDisableFill:    "DisableFill",
	CmdSetStrokePaint: "SetStrokePaint",
	CmdDisableStroke:  "DisableStroke",
	CmdDrawRect:       "DrawRect",
	CmdDrawCircle:     "DrawCircle",
	CmdDrawTriangle:   "DrawTriangle",
	CmdDrawEllipse:    "DrawEllipse",
	CmdDrawText:       "DrawText",
	CmdDrawLine:       "DrawLine",
	CmdDrawImage:      "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether c is a primitive drawing command.
func (c CommandType) IsDraw() bool {
	return c >= CmdDrawRect && c <= CmdDrawImage
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// State is the paint state and transform active when a primitive ran.
type State struct {
	Fill        gg.RGBA
	FillOn      bool
	Stroke      gg.RGBA
	StrokeWidth float64
	StrokeOn    bool
	Transform   gg.Matrix
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// PushCommand saves the current state.
type PushCommand struct{}

// Type implements Command.
func (PushCommand) Type() CommandType { return CmdPush }

// PopCommand restores the most recently pushed state.
type PopCommand struct{}

// Type implements Command.
func (PopCommand) Type() CommandType { return CmdPop }

// TranslateCommand moves the origin.
type TranslateCommand struct {
	DX, DY float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates the frame by Theta radians.
type RotateCommand struct {
	Theta float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Paint Commands
// --------------------------------------------------------------------------

// SetFillPaintCommand enables filling with Color.
type SetFillPaintCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (SetFillPaintCommand) Type() CommandType { return CmdSetFillPaint }

// DisableFillCommand turns filling off.
type DisableFillCommand struct{}

// Type implements Command.
func (DisableFillCommand) Type() CommandType { return CmdDisableFill }

// SetStrokePaintCommand enables stroking with Color at Width.
type SetStrokePaintCommand struct {
	Color gg.RGBA
	Width float64
}

// Type implements Command.
func (SetStrokePaintCommand) Type() CommandType { return CmdSetStrokePaint }

// DisableStrokeCommand turns stroking off.
type DisableStrokeCommand struct{}

// Type implements Command.
func (DisableStrokeCommand) Type() CommandType { return CmdDisableStroke }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawRectCommand draws a rectangle with its top-left corner at (X, Y).
type DrawRectCommand struct {
	X, Y, W, H float64
	State      State
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawCircleCommand draws a circle centred at (CX, CY).
type DrawCircleCommand struct {
	CX, CY, Diameter float64
	State            State
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// DrawTriangleCommand draws the closed triangle P1, P2, P3.
type DrawTriangleCommand struct {
	P1, P2, P3 gg.Point
	State      State
}

// Type implements Command.
func (DrawTriangleCommand) Type() CommandType { return CmdDrawTriangle }

// DrawEllipseCommand draws an ellipse centred at (CX, CY).
type DrawEllipseCommand struct {
	CX, CY, W, H float64
	State        State
}

// Type implements Command.
func (DrawEllipseCommand) Type() CommandType { return CmdDrawEllipse }

// DrawTextCommand draws Text with its baseline at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	State State
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawLineCommand strokes a segment.
type DrawLineCommand struct {
	X1, Y1, X2, Y2 float64
	State          State
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawImageCommand draws Image with its top-left corner at (X, Y).
type DrawImageCommand struct {
	Image *sketch.Image
	X, Y  float64
	State State
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Format renders cmd as one line, e.g. "DrawRect(50, 50, 50, 50) fill=#ff0000ff".
func Format(cmd Command) string {
	switch c := cmd.(type) {
	case PushCommand, PopCommand, DisableFillCommand, DisableStrokeCommand:
		return cmd.Type().String() + "()"
	case TranslateCommand:
		return fmt.Sprintf("Translate(%g, %g)", c.DX, c.DY)
	case RotateCommand:
		return fmt.Sprintf("Rotate(%g)", c.Theta)
	case SetFillPaintCommand:
		return fmt.Sprintf("SetFillPaint(%s)", hexOf(c.Color))
	case SetStrokePaintCommand:
		return fmt.Sprintf("SetStrokePaint(%s, %g)", hexOf(c.Color), c.Width)
	case DrawRectCommand:
		return fmt.Sprintf("DrawRect(%g, %g, %g, %g)%s", c.X, c.Y, c.W, c.H, formatState(c.State))
	case DrawCircleCommand:
		return fmt.Sprintf("DrawCircle(%g, %g, %g)%s", c.CX, c.CY, c.Diameter, formatState(c.State))
	case DrawTriangleCommand:
		return fmt.Sprintf("DrawTriangle((%g, %g), (%g, %g), (%g, %g))%s",
			c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y, formatState(c.State))
	case DrawEllipseCommand:
		return fmt.Sprintf("DrawEllipse(%g, %g, %g, %g)%s", c.CX, c.CY, c.W, c.H, formatState(c.State))
	case DrawTextCommand:
		return fmt.Sprintf("DrawText(%q, %g, %g)%s", c.Text, c.X, c.Y, formatState(c.State))
	case DrawLineCommand:
		return fmt.Sprintf("DrawLine(%g, %g, %g, %g)%s", c.X1, c.Y1, c.X2, c.Y2, formatState(c.State))
	case DrawImageCommand:
		return fmt.Sprintf("DrawImage(%s, %g, %g)%s", c.Image.Name(), c.X, c.Y, formatState(c.State))
	}
	return cmd.Type().String()
}

func formatState(s State) string {
	out := ""
	if s.FillOn {
		out += " fill=" + hexOf(s.Fill)
	}
	if s.StrokeOn {
		out += fmt.Sprintf(" stroke=%s/%g", hexOf(s.Stroke), s.StrokeWidth)
	}
	if !s.Transform.IsIdentity() {
		m := s.Transform
		out += fmt.Sprintf(" transform=[%.4g %.4g %.4g %.4g %.4g %.4g]", m.A, m.B, m.C, m.D, m.E, m.F)
	}
	return out
}

func hexOf(c gg.RGBA) string {
	n := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
