package recording

import (
	"github.com/gogpu/gg"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Path construction
	CmdMoveTo    CommandType = iota // Start a subpath
	CmdLineTo                       // Append a line
	CmdClosePath                    // Close the current subpath
	CmdClearPath                    // Discard the current path
	CmdCircle                       // Append a full circle subpath

	// Paint state
	CmdSetColor     // Set the paint colour
	CmdSetLineWidth // Set the stroke width
	CmdSetLineCap   // Set the stroke cap

	// Painting
	CmdStroke // Stroke and consume the current path
	CmdFill   // Fill and consume the current path
)

var commandTypeNames = [...]string{
	CmdMoveTo:       "MoveTo",
	CmdLineTo:       "LineTo",
	CmdClosePath:    "ClosePath",
	CmdClearPath:    "ClearPath",
	CmdCircle:       "Circle",
	CmdSetColor:     "SetColor",
	CmdSetLineWidth: "SetLineWidth",
	CmdSetLineCap:   "SetLineCap",
	CmdStroke:       "Stroke",
	CmdFill:         "Fill",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsPaint reports whether c consumes the current path.
func (c CommandType) IsPaint() bool {
	return c == CmdStroke || c == CmdFill
}

// Command is implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// MoveToCommand starts a new subpath at (X, Y).
type MoveToCommand struct{ X, Y float64 }

// LineToCommand appends a line to (X, Y).
type LineToCommand struct{ X, Y float64 }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// ClearPathCommand discards the current path without painting it.
type ClearPathCommand struct{}

// CircleCommand appends a circle of radius R centred on (X, Y).
type CircleCommand struct{ X, Y, R float64 }

// SetColorCommand sets the colour used by the next stroke or fill.
type SetColorCommand struct{ Color gg.RGBA }

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct{ Width float64 }

// SetLineCapCommand sets the stroke cap.
type SetLineCapCommand struct{ Cap gg.LineCap }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// Type implements Command.
func (ClearPathCommand) Type() CommandType { return CmdClearPath }

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// Type implements Command.
func (SetLineCapCommand) Type() CommandType { return CmdSetLineCap }

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }
