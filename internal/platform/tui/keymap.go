package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoclean/internal/core"
)

// gameBindings maps key names to clean-up actions.
var gameBindings = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,

	"up":        core.ActionUp,
	"w":         core.ActionUp,
	"down":      core.ActionDown,
	"s":         core.ActionDown,
	"left":      core.ActionLeft,
	"a":         core.ActionLeft,
	"shift+tab": core.ActionLeft,
	"right":     core.ActionRight,
	"d":         core.ActionRight,
	"tab":       core.ActionRight,

	"enter": core.ActionConfirm,
	"esc":   core.ActionBack,
	"b":     core.ActionBack,
	"r":     core.ActionRestart,

	"1": core.ActionBinDelete,
	"2": core.ActionBinArchive,
	"3": core.ActionBinRecycle,
}

// MenuAction is a menu intent derived from a key press.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuBindings = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"w":      MenuActionUp,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"s":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// KeyMapper turns Bubble Tea key messages into game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameBindings, menu: menuBindings}
}

// MapKey returns the game action for msg (ActionNone when unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	a, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame records the action for msg in frame and reports whether
// it asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	a, quit := km.MapKey(msg)
	if a != core.ActionNone {
		frame.Set(a)
	}
	return quit
}

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
