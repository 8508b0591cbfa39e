package core

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft  // Previous item
	ActionRight // Next item
	ActionConfirm
	ActionBack // Leave the current screen
	ActionRestart
	ActionQuit
	ActionBinDelete
	ActionBinArchive
	ActionBinRecycle

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Confirm", "Back", "Restart", "Quit",
	"BinDelete", "BinArchive", "BinRecycle",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one frame.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Clear empties the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
