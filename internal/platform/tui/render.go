package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FillChar is the rune used for solid shapes.
const FillChar = '█'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorBlack:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellRenderer draws world-unit shapes onto a Screen, scaling the world to
// whatever size the terminal currently has.
type CellRenderer struct {
	screen *core.Screen
	world  config.World
}

// NewCellRenderer creates a renderer targeting screen.
func NewCellRenderer(screen *core.Screen, world config.World) *CellRenderer {
	return &CellRenderer{screen: screen, world: world}
}

func (r *CellRenderer) scale() (float64, float64) {
	return float64(r.screen.Width()) / r.world.Width, float64(r.screen.Height()) / r.world.Height
}

// Clear blanks the screen.
func (r *CellRenderer) Clear() {
	r.screen.Clear()
}

// DrawRect fills the cells covered by the rectangle. Anything with positive
// extent covers at least one cell.
func (r *CellRenderer) DrawRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := r.scale()

	x0 := int(math.Round(x * sx))
	x1 := int(math.Round((x + w) * sx))
	y0 := int(math.Round(y * sy))
	y1 := int(math.Round((y + h) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	r.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), FillChar, c)
}

// DrawText writes text with its baseline at (x, y).
func (r *CellRenderer) DrawText(text string, x, y float64) {
	sx, sy := r.scale()
	col := int(x * sx)
	row := core.Clamp(int(y*sy)-1, 0, core.Max(r.screen.Height()-1, 0))
	r.screen.DrawColoredText(col, row, " "+text+" ", core.ColorBrightWhite)
}
