package window

import (
	"image/color"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// palette maps core.Color to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:   {R: 230, G: 230, B: 230, A: 255},
	core.ColorRed:       {R: 255, G: 0, B: 0, A: 255},
	core.ColorGreen:     {R: 0, G: 160, B: 0, A: 255},
	core.ColorYellow:    {R: 255, G: 215, B: 0, A: 255},
	core.ColorBlue:      {R: 30, G: 80, B: 220, A: 255},
	core.ColorWhite:     {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:      {R: 128, G: 128, B: 128, A: 255},
	core.ColorOrange:    {R: 255, G: 165, B: 0, A: 255},
	core.ColorOrangeRed: {R: 255, G: 69, B: 0, A: 255},
	core.ColorCrimson:   {R: 220, G: 20, B: 60, A: 255},
	core.ColorDarkBrown: {R: 101, G: 67, B: 33, A: 255},
	core.ColorSaddle:    {R: 139, G: 69, B: 19, A: 255},
	core.ColorSienna:    {R: 160, G: 82, B: 45, A: 255},
	core.ColorPeru:      {R: 205, G: 133, B: 63, A: 255},
	core.ColorRoyalBlue: {R: 65, G: 105, B: 225, A: 255},
	core.ColorLimeGreen: {R: 50, G: 205, B: 50, A: 255},
	core.ColorForest:    {R: 34, G: 139, B: 34, A: 255},
	core.ColorSkyBlue:   {R: 135, G: 206, B: 235, A: 255},
	core.ColorDusk:      {R: 255, G: 160, B: 122, A: 255},
	core.ColorNight:     {R: 25, G: 25, B: 112, A: 255},
}

// rgba returns the screen color for c, falling back to the default.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// faded scales c's alpha by a in [0, 1].
func faded(c core.Color, a float64) color.RGBA {
	v := rgba(c)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// Ebiten expects premultiplied alpha.
	v.R = uint8(float64(v.R) * a)
	v.G = uint8(float64(v.G) * a)
	v.B = uint8(float64(v.B) * a)
	v.A = uint8(255 * a)
	return v
}
