package swgpu

import "github.com/go-gl/mathgl/mgl32"

// ClearCommand resets the framebuffer's color and/or depth plane.
type ClearCommand struct {
	Color      mgl32.Vec4 // components clamped to [0, 1] before use
	Depth      float32
	ClearColor bool
	ClearDepth bool
}

// DrawCommand dispatches a triangle-list draw of NumVertices elements
// (a multiple of 3) through the given program and vertex array object.
type DrawCommand struct {
	ProgramID       int
	NumVertices     int
	BackfaceCulling bool
	VAO             VAO
}

// commandKind tags which variant a Command carries. Unrecognized kinds are
// skipped silently by the executor, per spec §4.1.
type commandKind uint8

const (
	commandClear commandKind = iota
	commandDraw
)

// Command is a tagged union over ClearCommand and DrawCommand, matching the
// discriminated-struct shape used throughout this package for sum types
// that must live in a flat, ordered slice without allocation per element.
type Command struct {
	kind  commandKind
	clear ClearCommand
	draw  DrawCommand
}

// CommandBuffer is an ordered, finite sequence of commands. Execute walks
// it front to back exactly once.
//
// The zero value is a valid, unbounded CommandBuffer (maxCommands == 0 means
// no cap), so existing code that declares `var cb CommandBuffer` keeps
// working exactly as before. NewCommandBuffer opts into a cap via Limits.
type CommandBuffer struct {
	commands    []Command
	maxCommands int
}

// NewCommandBuffer creates a CommandBuffer pre-sized to and capped at
// limits.MaxCommands. A limits.MaxCommands of 0 means unbounded, matching
// the zero-value CommandBuffer.
func NewCommandBuffer(limits Limits) CommandBuffer {
	return CommandBuffer{
		commands:    make([]Command, 0, limits.MaxCommands),
		maxCommands: limits.MaxCommands,
	}
}

// append records cmd, or drops it and logs a Warn if the buffer is already
// at its construction-time capacity.
func (cb *CommandBuffer) append(cmd Command) {
	if cb.maxCommands > 0 && len(cb.commands) >= cb.maxCommands {
		Logger().Warn("swgpu: command buffer at capacity, dropping command",
			"maxCommands", cb.maxCommands)
		return
	}
	cb.commands = append(cb.commands, cmd)
}

// Clear appends a CLEAR command to the buffer.
func (cb *CommandBuffer) Clear(cmd ClearCommand) {
	cb.append(Command{kind: commandClear, clear: cmd})
}

// Draw appends a DRAW command to the buffer.
func (cb *CommandBuffer) Draw(cmd DrawCommand) {
	cb.append(Command{kind: commandDraw, draw: cmd})
}

// Len returns the number of recorded commands.
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// Reset clears the buffer for reuse, keeping its underlying storage.
func (cb *CommandBuffer) Reset() {
	cb.commands = cb.commands[:0]
}
