package native

// CommandType identifies the type of a recorded state command.
type CommandType uint8

const (
	// CmdSetBlendMode records a per-target blend mode registration.
	CmdSetBlendMode CommandType = iota

	// CmdSetMultisampleState records a multisample state update.
	CmdSetMultisampleState
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetBlendMode:        "SetBlendMode",
	CmdSetMultisampleState: "SetMultisampleState",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetBlendModeCommand captures one SetBlendMode call.
type SetBlendModeCommand struct {
	Slot uint32
	Mode BlendMode
}

// Type returns CmdSetBlendMode.
func (SetBlendModeCommand) Type() CommandType { return CmdSetBlendMode }

// SetMultisampleStateCommand captures one SetMultisampleState call.
type SetMultisampleStateCommand struct {
	State MultisampleState
}

// Type returns CmdSetMultisampleState.
func (SetMultisampleStateCommand) Type() CommandType { return CmdSetMultisampleState }

// RecordingContext is a Context that records every call as a typed command
// in issue order. It is intended for tests and for integrators that want to
// inspect or replay the state stream.
//
// RecordingContext is not safe for concurrent use; like a real
// command-recording context, each instance belongs to a single thread.
type RecordingContext struct {
	commands []Command
}

// NewRecordingContext creates an empty recording context.
func NewRecordingContext() *RecordingContext {
	return &RecordingContext{}
}

// SetBlendMode records the blend mode registration for the given slot.
func (c *RecordingContext) SetBlendMode(slot uint32, mode BlendMode) {
	c.commands = append(c.commands, SetBlendModeCommand{Slot: slot, Mode: mode})
}

// SetMultisampleState records the multisample state update.
func (c *RecordingContext) SetMultisampleState(state MultisampleState) {
	c.commands = append(c.commands, SetMultisampleStateCommand{State: state})
}

// Commands returns the recorded commands in issue order.
// The returned slice is owned by the context; callers must not modify it.
func (c *RecordingContext) Commands() []Command {
	return c.commands
}

// Reset discards all recorded commands, retaining capacity.
func (c *RecordingContext) Reset() {
	c.commands = c.commands[:0]
}

var _ Context = (*RecordingContext)(nil)
