package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/tui-simlab/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "p":
		return core.ActionPause, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-", "_":
		return core.ActionSpeedDown, false
	case "[":
		return core.ActionScrubBack, false
	case "]":
		return core.ActionScrubForward, false
	case "s":
		return core.ActionSave, false
	case "l":
		return core.ActionLoad, false
	case "f":
		return core.ActionFocus, false
	case "left", "h":
		return core.ActionPanLeft, false
	case "right":
		return core.ActionPanRight, false
	case "up", "k":
		return core.ActionPanUp, false
	case "down", "j":
		return core.ActionPanDown, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionSessions
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionSessions
	}

	return MenuActionNone
}
