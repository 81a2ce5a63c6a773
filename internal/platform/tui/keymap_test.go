package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lava-escape/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(5)
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.want || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), got, quit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestDirectionHold(t *testing.T) {
	km := NewKeyMapper(3)
	frame := core.NewInputFrame()

	km.Press(runeKey('a'), &frame)
	if frame.Has(core.ActionLeft) {
		t.Fatal("directions should only appear when applied on a tick")
	}

	for tick := 1; tick <= 3; tick++ {
		frame.Clear()
		km.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("left should be held on tick %d", tick)
		}
	}

	frame.Clear()
	km.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("hold should expire after holdTicks")
	}
}

func TestDirectionRepeatRenewsAndOppositeCancels(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewInputFrame()

	km.Press(runeKey('d'), &frame)
	km.Apply(&frame)
	km.Press(runeKey('d'), &frame) // auto-repeat
	frame.Clear()
	km.Apply(&frame)
	frame.Clear()
	km.Apply(&frame)
	if !frame.Has(core.ActionRight) {
		t.Error("a repeat should renew the hold")
	}

	km.Press(runeKey('a'), &frame)
	frame.Clear()
	km.Apply(&frame)
	if frame.Has(core.ActionRight) || !frame.Has(core.ActionLeft) {
		t.Error("pressing left should cancel a held right")
	}

	km.Release()
	frame.Clear()
	km.Apply(&frame)
	if frame.Has(core.ActionLeft) || frame.Has(core.ActionRight) {
		t.Error("Release should drop every hold")
	}
}

func TestPressOneShotActions(t *testing.T) {
	km := NewKeyMapper(3)
	frame := core.NewInputFrame()

	if quit := km.Press(runeKey(' '), &frame); quit {
		t.Fatal("space is not a quit key")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("jump should be set immediately")
	}

	if quit := km.Press(runeKey('q'), &frame); !quit {
		t.Error("q should request quit")
	}
}
