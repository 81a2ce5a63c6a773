package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for holdTicks ticks after its latest press.
type KeyMapper struct {
	holdTicks int
	left      int // ticks of hold remaining
	right     int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{holdTicks: holdTicks}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "space", "w", "up":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r", "enter":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Press records a key for the next tick.
// Directions start (or renew) a hold; other actions fire once.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.left = km.holdTicks
		km.right = 0
	case core.ActionRight:
		km.right = km.holdTicks
		km.left = 0
	default:
		frame.Set(action)
	}
	return isQuit
}

// Apply adds held directions to frame and advances the hold timers by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
}

// Release drops any held direction.
func (km *KeyMapper) Release() {
	km.left, km.right = 0, 0
}
