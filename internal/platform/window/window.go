// Package window runs Lava Escape in a desktop window with Ebitengine.
// One world unit is one pixel; the simulation ticks at Ebitengine's TPS.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lava-escape/internal/core"
	"github.com/vovakirdan/lava-escape/internal/games/lava"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// debugGlyphH is the line height of the debug font.
const debugGlyphH = 16

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("quit")

// Game adapts a lava.Game to ebiten.Game.
type Game struct {
	game   *lava.Game
	config core.RuntimeConfig
	keys   keySource
	frame  core.InputFrame
	logger *log.Logger
}

// NewGame prepares the window frontend. The session is reset immediately.
func NewGame(game *lava.Game, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}
	cfg.CellW, cfg.CellH = 1, 1
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)
	logger.Info("game started", "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)

	return &Game{
		game:   game,
		config: cfg,
		keys:   ebitenKeys{},
		frame:  core.NewInputFrame(),
		logger: logger,
	}
}

// Update advances the simulation by one tick.
func (w *Game) Update() error {
	if readFrame(w.keys, &w.frame) {
		return errQuit
	}
	w.game.Step(w.frame)
	return nil
}

// Layout keeps the world the size of the window.
func (w *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.config.ScreenW || outsideHeight != w.config.ScreenH {
		w.config.ScreenW, w.config.ScreenH = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
		w.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Draw renders the current snapshot.
func (w *Game) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(rgba(lava.BackgroundColor(snap.Background)))

	for _, p := range snap.Platforms {
		drawPlatform(screen, snap.CameraY, p)
	}
	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y-snap.CameraY), 3, 3, faded(p.Color, p.Alpha()), false)
	}
	drawPlayer(screen, snap)
	drawLava(screen, snap)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Height: %dm  Time: %ds", snap.Score, snap.Time), 10, 10)

	switch {
	case snap.GameOver:
		w.drawGameOver(screen, snap)
	case snap.Paused:
		drawPanel(screen, []string{"PAUSED", "Press P to resume"})
	}
}

func drawPlatform(screen *ebiten.Image, cameraY float64, p lava.PlatformView) {
	y := float32(p.Y - cameraY)
	vector.DrawFilledRect(screen, float32(p.X), y, float32(p.Width), float32(p.Height), rgba(p.Color), false)

	if p.Cracking {
		crack := color.RGBA{A: 160}
		for x := p.X + 6; x < p.X+p.Width-4; x += 14 {
			vector.StrokeLine(screen, float32(x), y, float32(x+5), y+float32(p.Height), 1, crack, false)
		}
	}
	if p.Type == lava.PlatformTrap && p.TrapActive {
		spike := rgba(core.ColorOrange)
		for x := p.X; x+8 <= p.X+p.Width; x += 10 {
			vector.StrokeLine(screen, float32(x), y, float32(x+4), y-6, 2, spike, false)
			vector.StrokeLine(screen, float32(x+4), y-6, float32(x+8), y, 2, spike, false)
		}
	}
}

func drawPlayer(screen *ebiten.Image, snap lava.Snapshot) {
	p := snap.Player
	y := float32(p.Y - snap.CameraY)
	vector.DrawFilledRect(screen, float32(p.X), y, float32(p.Width), float32(p.Height), rgba(core.ColorForest), false)

	// Eyes look where the player is heading.
	look := float32(0)
	switch {
	case p.VelX > 0.5:
		look = 2
	case p.VelX < -0.5:
		look = -2
	}
	cx := float32(p.X + p.Width/2)
	eye := rgba(core.ColorWhite)
	vector.DrawFilledCircle(screen, cx-5+look, y+8, 3, eye, false)
	vector.DrawFilledCircle(screen, cx+5+look, y+8, 3, eye, false)
}

func drawLava(screen *ebiten.Image, snap lava.Snapshot) {
	top := float32(snap.LavaY - snap.CameraY)
	h := float32(screen.Bounds().Dy())
	if top >= h {
		return
	}
	vector.DrawFilledRect(screen, 0, top, float32(snap.WorldW), h-top, rgba(core.ColorCrimson), false)

	// A wavy crust that drifts with time.
	crust := rgba(core.ColorOrangeRed)
	phase := float64(snap.Tick%40) / 40 * 20
	for x := -20.0 + phase; x < snap.WorldW; x += 20 {
		vector.DrawFilledCircle(screen, float32(x), top, 8, crust, false)
	}
}

func (w *Game) drawGameOver(screen *ebiten.Image, snap lava.Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Height: %dm  Time: %ds", snap.Score, snap.Time),
	}
	if b := w.game.Board(); b != nil {
		if entries := b.Entries(); len(entries) > 0 {
			lines = append(lines, "", "Top climbs:")
			for i, e := range entries {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, e))
			}
		}
	}
	lines = append(lines, "", "Press R to restart")
	drawPanel(screen, lines)
}

// drawPanel draws a dimmed box with centered debug-font text.
func drawPanel(screen *ebiten.Image, lines []string) {
	const charW = 6
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := width*charW + 40
	boxH := len(lines)*debugGlyphH + 30

	b := screen.Bounds()
	x := (b.Dx() - boxW) / 2
	y := (b.Dy() - boxH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), 2, rgba(core.ColorWhite), false)

	for i, l := range lines {
		lx := x + (boxW-len(l)*charW)/2
		ebitenutil.DebugPrintAt(screen, l, lx, y+15+i*debugGlyphH)
	}
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(game *lava.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := NewGame(game, cfg, logger)

	ebiten.SetWindowSize(w.config.ScreenW, w.config.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
