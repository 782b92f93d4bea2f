package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Palette maps screen color slots to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// DayPalette is used while night mode is off.
var DayPalette = Palette{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorCactus:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBanner:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// NightPalette swaps to a dark background with cold foregrounds.
var NightPalette = Palette{
	core.ColorDefault: lipgloss.NewStyle().Background(lipgloss.Color("17")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("17")),
	core.ColorCactus:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Background(lipgloss.Color("17")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Background(lipgloss.Color("17")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("17")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("17")).Bold(true),
	core.ColorBanner:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Background(lipgloss.Color("17")),
}

// PaletteFor picks the palette for the current time of day.
func PaletteFor(night bool) Palette {
	if night {
		return NightPalette
	}
	return DayPalette
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
