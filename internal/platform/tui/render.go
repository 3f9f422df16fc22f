package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Glyphs of the pause control. The label shows what a click does.
const (
	GlyphPause  = "⏸"
	GlyphResume = "▶"
	GlyphLeft   = "◀"
	GlyphRight  = "▶"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57"))

	zoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Background(lipgloss.Color("236"))

	zoneActiveStyle = zoneStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))

	gameOverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(1, 4).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

func cellStyle(c core.Cell) lipgloss.Style {
	style, ok := colorStyles[c.Color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if c.Dim {
		style = style.Faint(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Dim != start.Dim {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHUD draws the status bar: pause control, score and lives.
func RenderHUD(h *HUD, width int) string {
	glyph := GlyphPause
	if h.Paused {
		glyph = GlyphResume
	}
	text := fmt.Sprintf(" %s  Score: %d  Lives: %s", glyph, h.Score, livesText(h.Lives))
	return hudStyle.Width(width).Render(text)
}

func livesText(lives int) string {
	if lives <= 0 {
		return "0"
	}
	return strings.Repeat("♥", lives)
}

// RenderZones draws the two clickable direction zones, highlighting the pressed one.
func RenderZones(width int, active core.Zone) string {
	left := width / 2
	right := width - left

	ls, rs := zoneStyle, zoneStyle
	switch active {
	case core.ZoneLeft:
		ls = zoneActiveStyle
	case core.ZoneRight:
		rs = zoneActiveStyle
	}

	return ls.Width(left).Align(lipgloss.Center).Render(GlyphLeft) +
		rs.Width(right).Align(lipgloss.Center).Render(GlyphRight)
}

// RenderGameOver draws the final score box centered in a width x height area.
func RenderGameOver(score, width, height int) string {
	box := gameOverStyle.Render(
		titleStyle.Render("GAME OVER") + "\n\n" +
			fmt.Sprintf("Final score: %d", score) + "\n\n" +
			"enter to play again, q to quit",
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
