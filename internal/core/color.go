package core

// Color is a palette index for a screen cell or a rendered entity.
// Frontends map it to ANSI 256 codes (terminal) or RGBA (window).
type Color uint8

// Palette used by the game. The order is stable; frontends index on it.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorOrange
	ColorOrangeRed
	ColorCrimson
	ColorDarkBrown  // crumble debris
	ColorSaddle     // fresh crumbling platform
	ColorSienna     // worn crumbling platform
	ColorPeru       // failing crumbling platform
	ColorRoyalBlue  // moving platform
	ColorLimeGreen  // disarmed trap
	ColorForest     // player body
	ColorSkyBlue    // day background
	ColorDusk       // dusk background
	ColorNight      // night background
)
