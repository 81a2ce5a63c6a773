package core

import (
	"math/bits"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; the simulation never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held: run left
	ActionRight          // D, Right arrow - held: run right
	ActionJump           // Space, W, Up - edge-triggered jump
	ActionPause          // P - pause/unpause
	ActionRestart        // R, Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions for one simulation tick.
// Held actions (Left, Right) are set on every tick the key is down;
// edge actions (Jump, Pause, Restart) only on the tick they fired.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone {
		f.bits |= 1 << a
	}
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && f.bits&(1<<a) != 0
}

// Count returns how many distinct actions are set.
func (f InputFrame) Count() int {
	return bits.OnesCount32(f.bits)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the set actions, for logs and test failures.
func (f InputFrame) String() string {
	var names []string
	for a := ActionLeft; a <= ActionQuit; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
