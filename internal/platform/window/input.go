package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// keySource reports keyboard state for the current frame.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings. Directions are held; the rest fire on the press edge.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, f func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// readFrame fills frame from src and reports whether quit was pressed.
func readFrame(src keySource, frame *core.InputFrame) (quit bool) {
	frame.Clear()
	if anyKey(leftKeys, src.Pressed) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(rightKeys, src.Pressed) {
		frame.Set(core.ActionRight)
	}
	if anyKey(jumpKeys, src.JustPressed) {
		frame.Set(core.ActionJump)
	}
	if anyKey(pauseKeys, src.JustPressed) {
		frame.Set(core.ActionPause)
	}
	if anyKey(restartKeys, src.JustPressed) {
		frame.Set(core.ActionRestart)
	}
	return anyKey(quitKeys, src.JustPressed)
}
