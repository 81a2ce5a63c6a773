package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lava-escape/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (256-color palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorOrangeRed: lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorCrimson:   lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
	core.ColorDarkBrown: lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorSaddle:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorSienna:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorPeru:      lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
	core.ColorRoyalBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	core.ColorLimeGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
	core.ColorForest:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	core.ColorSkyBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorDusk:      lipgloss.NewStyle().Foreground(lipgloss.Color("216")),
	core.ColorNight:     lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
}

// span is a run of cells sharing one color.
type span struct {
	color core.Color
	text  strings.Builder
}

// RenderScreen turns a screen into styled terminal output, one line per row.
// Each row is split into same-color spans so a style is applied once per span.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var cur span
	flush := func() {
		if cur.text.Len() == 0 {
			return
		}
		style, ok := colorStyles[cur.color]
		if !ok || cur.color == core.ColorDefault {
			out.WriteString(cur.text.String())
		} else {
			out.WriteString(style.Render(cur.text.String()))
		}
		cur.text.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != cur.color {
				flush()
				cur.color = cell.Color
			}
			cur.text.WriteRune(cell.Rune)
		}
		flush()
	}
	return out.String()
}
