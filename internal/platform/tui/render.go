package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme maps the game's glyphs to lipgloss styles.
type Theme struct {
	styles map[rune]lipgloss.Style
	plain  lipgloss.Style
}

// NewTheme builds the default colours for the configured glyphs.
func NewTheme(g config.Glyphs) Theme {
	wall, food, snake := g.Runes()
	return Theme{
		styles: map[rune]lipgloss.Style{
			wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			food:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			snake: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		},
		plain: lipgloss.NewStyle(),
	}
}

func (t Theme) style(r rune) lipgloss.Style {
	if s, ok := t.styles[r]; ok {
		return s
	}
	return t.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent identical glyphs to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			// Collect the run of the same glyph
			var run strings.Builder
			for x < s.Width() && s.Get(x, y) == start {
				run.WriteRune(start)
				x++
			}

			sb.WriteString(t.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
