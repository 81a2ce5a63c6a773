package lava

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	CrackChar    = '▓'
	SpikeChar    = '^'
	PlayerHead   = '●'
	PlayerBody   = '█'
	LavaTopChar  = '~'
	LavaChar     = '▒'
	SparkChar    = '*'
	EmberChar    = '·'
	SkyChar      = '.'
)

// backgroundColors maps a background index to its sky tint.
var backgroundColors = []core.Color{core.ColorSkyBlue, core.ColorDusk, core.ColorNight}

// BackgroundColor returns the sky tint for a background index.
func BackgroundColor(i int) core.Color {
	return backgroundColors[i%len(backgroundColors)]
}

// Render draws the session onto a cell grid.
// Each cell covers CellW x CellH world units; row 0 is the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g.runtime, g.cameraY)

	g.drawSky(dst, v)
	g.drawLava(dst, v)

	for _, pl := range g.platforms {
		g.drawPlatform(dst, v, pl)
	}
	for _, p := range g.particles.Particles() {
		ch := EmberChar
		if p.Alpha() > 0.5 {
			ch = SparkChar
		}
		dst.SetColor(v.col(p.X), v.row(p.Y), ch, p.Color)
	}
	g.drawPlayer(dst, v)

	hud := fmt.Sprintf(" Height: %dm  Time: %ds ", g.score, g.Elapsed())
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)

	if g.paused {
		dst.DrawPanel([]string{"PAUSED", "Press P to resume"}, core.ColorYellow, core.ColorWhite)
	}
	if g.gameOver {
		g.drawGameOver(dst)
	}
}

// viewport converts world coordinates to screen cells.
type viewport struct {
	cellW, cellH float64
	cameraY      float64
}

func newViewport(rt core.RuntimeConfig, cameraY float64) viewport {
	cw, ch := rt.CellW, rt.CellH
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return viewport{cellW: float64(cw), cellH: float64(ch), cameraY: cameraY}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.cellW))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((y - v.cameraY) / v.cellH))
}

// drawSky scatters background marks that scroll with the camera.
func (g *Game) drawSky(dst *core.Screen, v viewport) {
	c := BackgroundColor(g.Background())
	offset := int(math.Floor(v.cameraY / v.cellH))
	for y := 1; y < dst.Height(); y++ {
		worldRow := y + offset
		for x := 0; x < dst.Width(); x++ {
			if skyMark(x, worldRow) {
				dst.SetColor(x, y, SkyChar, c)
			}
		}
	}
}

// skyMark is a fixed sparse pattern over world rows and columns.
func skyMark(x, worldRow int) bool {
	h := uint32(x)*73856093 ^ uint32(worldRow)*19349663 //#nosec G115 -- hash computation
	return h%29 == 0
}

func (g *Game) drawLava(dst *core.Screen, v viewport) {
	top := v.row(g.lavaY)
	if top >= dst.Height() {
		return
	}
	for y := max(top, 1); y < dst.Height(); y++ {
		ch, c := LavaChar, core.ColorCrimson
		if y == top {
			ch, c = LavaTopChar, core.ColorOrangeRed
		}
		dst.DrawHLine(0, y, dst.Width(), ch, c)
	}
}

func (g *Game) drawPlatform(dst *core.Screen, v viewport, pl *Platform) {
	y := v.row(pl.Y)
	if y < 1 || y >= dst.Height() {
		return
	}
	x0 := v.col(pl.X)
	x1 := v.col(pl.X + pl.Width - 1)

	ch := PlatformChar
	if pl.Cracking() {
		ch = CrackChar
	}
	dst.DrawHLine(x0, y, x1-x0+1, ch, pl.Color())

	if pl.Deadly() && y-1 >= 1 {
		for x := x0; x <= x1; x += 2 {
			dst.SetColor(x, y-1, SpikeChar, core.ColorOrange)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.player
	x0, x1 := v.col(p.X), v.col(p.X+p.Width-1)
	y0, y1 := v.row(p.Y), v.row(p.Bottom()-1)
	for y := y0; y <= y1; y++ {
		if y < 1 {
			continue
		}
		for x := x0; x <= x1; x++ {
			ch := PlayerBody
			if y == y0 {
				ch = PlayerHead
			}
			dst.SetColor(x, y, ch, core.ColorForest)
		}
	}
}

// drawGameOver shows the final result and the leaderboard.
func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Height: %dm  Time: %ds", g.score, g.Elapsed()),
	}
	if g.board != nil {
		entries := g.board.Entries()
		if len(entries) > 0 {
			lines = append(lines, "", "Top climbs:")
			for i, e := range entries {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, e))
			}
		}
	}
	lines = append(lines, "", "Press R to restart")
	dst.DrawPanel(lines, core.ColorYellow, core.ColorWhite)
}

