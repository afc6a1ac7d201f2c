package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-endgame/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings. Each SSH
// session gets its own so colours match the client's terminal profile.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[core.Style]lipgloss.Style
}

// NewScreenRenderer creates a renderer backed by r. A nil r uses the
// default lipgloss renderer for the local terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

// Lipgloss returns the underlying lipgloss renderer.
func (sr *ScreenRenderer) Lipgloss() *lipgloss.Renderer {
	return sr.renderer
}

// style returns the cached lipgloss style for a cell style.
func (sr *ScreenRenderer) style(s core.Style) lipgloss.Style {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if st, ok := sr.styles[s]; ok {
		return st
	}

	st := sr.renderer.NewStyle()
	if s.Fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(s.Bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Strike {
		st = st.Strikethrough(true)
	}
	sr.styles[s] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.IsZero() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen renders s with the local terminal's renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}
