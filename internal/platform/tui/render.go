package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ansiCodes maps core.Color to terminal color codes. Walls are blue, the
// player yellow, pellets and text white.
var ansiCodes = map[core.Color]string{
	core.ColorRed:    "9",
	core.ColorYellow: "11",
	core.ColorBlue:   "27",
	core.ColorWhite:  "15",
}

// palette holds one style per color, built once.
var palette = buildPalette()

func buildPalette() map[core.Color]lipgloss.Style {
	p := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiCodes {
		p[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are rendered as a single run, and blank cells
// are never styled, to keep the ANSI output per frame small.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
