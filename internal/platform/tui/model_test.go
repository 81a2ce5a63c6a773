package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lava-escape/internal/config"
	"github.com/vovakirdan/lava-escape/internal/core"
	"github.com/vovakirdan/lava-escape/internal/games/lava"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := log.New(io.Discard)
	game := lava.New(config.DefaultLavaConfig(), lava.WithLogger(logger))
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 7}, 3, logger)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelTicksTheGame(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("each tick should schedule the next")
	}
	if got := m.game.Snapshot().Tick; got != 1 {
		t.Errorf("tick = %d, expected 1", got)
	}
}

func TestModelHeldDirectionMovesPlayer(t *testing.T) {
	m := newTestModel(t)
	startX := m.game.Snapshot().Player.X

	m, _ = update(t, m, runeKey('a'))
	for range 3 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	afterHold := m.game.Snapshot().Player.X
	if afterHold >= startX {
		t.Fatalf("player should run left while the key is held: %v -> %v", startX, afterHold)
	}

	// The hold has expired; friction only slows the player down.
	m, _ = update(t, m, TickMsg(time.Now()))
	if vx := m.game.Snapshot().Player.VelX; vx >= 0 || vx <= -config.DefaultLavaConfig().Player.Speed {
		t.Errorf("VelX = %v, expected a decaying leftward velocity", vx)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	snap := m.game.Snapshot()
	if snap.WorldW != 100*CellW || snap.ViewH != 40*CellH {
		t.Errorf("world = %vx%v after resize", snap.WorldW, snap.ViewH)
	}
	if snap.Tick != 1 {
		t.Error("resize should not restart the run")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "Height: 0m") {
		t.Error("view should show the HUD")
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
