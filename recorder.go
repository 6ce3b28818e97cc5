package tiledraw

import "image"

// CommandType identifies the type of a recorded surface operation.
type CommandType uint8

const (
	CmdSave CommandType = iota
	CmdRestore
	CmdTransform
	CmdClipRect
	CmdDrawImageRect
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:          "Save",
	CmdRestore:       "Restore",
	CmdTransform:     "Transform",
	CmdClipRect:      "ClipRect",
	CmdDrawImageRect: "DrawImageRect",
}

// String returns the command type name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is one recorded surface operation. Fields beyond Type are
// populated only where they apply to the operation.
type Command struct {
	Type CommandType

	// Matrix is the transform appended by a Transform command.
	Matrix Matrix

	// Clip is the rectangle of a ClipRect command.
	Clip Rect

	// Src, SrcRect and DstRect describe a DrawImageRect command.
	Src     image.Image
	SrcRect Rect
	DstRect Rect

	// Paint is a copy of the paint used by a DrawImageRect command.
	Paint *Paint
}

// Recorder is a Surface that captures operations as commands instead
// of rasterizing pixels. It is used to inspect the exact draw sequence
// a paint operation produces, and by tests to assert tile order, flip
// transforms and Save/Restore pairing.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	depth    int
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates an empty command recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Commands returns the recorded operations in order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Depth returns the current Save nesting depth. A balanced recording
// ends at depth 0.
func (r *Recorder) Depth() int {
	return r.depth
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.depth = 0
}

// Save implements Surface.
func (r *Recorder) Save() {
	r.depth++
	r.commands = append(r.commands, Command{Type: CmdSave})
}

// Restore implements Surface.
func (r *Recorder) Restore() {
	r.depth--
	r.commands = append(r.commands, Command{Type: CmdRestore})
}

// Transform implements Surface.
func (r *Recorder) Transform(m Matrix) {
	r.commands = append(r.commands, Command{Type: CmdTransform, Matrix: m})
}

// ClipRect implements Surface.
func (r *Recorder) ClipRect(rect Rect) {
	r.commands = append(r.commands, Command{Type: CmdClipRect, Clip: rect})
}

// DrawImageRect implements Surface.
func (r *Recorder) DrawImageRect(src image.Image, srcRect, dstRect Rect, p *Paint) {
	cmd := Command{
		Type:    CmdDrawImageRect,
		Src:     src,
		SrcRect: srcRect,
		DstRect: dstRect,
	}
	if p != nil {
		cmd.Paint = p.Clone()
	}
	r.commands = append(r.commands, cmd)
}

// DrawCommands returns only the DrawImageRect commands, in order.
func (r *Recorder) DrawCommands() []Command {
	var draws []Command
	for _, cmd := range r.commands {
		if cmd.Type == CmdDrawImageRect {
			draws = append(draws, cmd)
		}
	}
	return draws
}
