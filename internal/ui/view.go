package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipe/internal/swiper"
	"swipe/internal/ui/views"
)

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	w, h := m.trackSize()
	var body string
	switch {
	case !m.loaded:
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.styles.Dim.Render("Loading panels..."))
	case m.panels.Len() == 0:
		msg := fmt.Sprintf("No panels in %s\nAdd .md or .txt files and press r", m.panels.Dir)
		body = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.styles.Dim.Render(msg))
	default:
		body = m.renderTrack(w, h)
	}
	if m.showHelp {
		body = views.RenderPopup(m.help.FullHelpView(m.inputHandler.KeyMap().FullHelp()), w, h, m.styles)
	}

	parts := []string{m.renderHeader(), body}
	if m.sw.Options().PaginationVisible {
		parts = append(parts, m.dots.Render(m.sw.Logical(), m.panels.Len(), m.width))
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader() string {
	title := ""
	if p, ok := m.activePanel(); ok {
		title = p.DisplayTitle()
	}

	right := ""
	if n := m.panels.Len(); n > 0 {
		right = fmt.Sprintf("%d/%d", m.sw.Logical()+1, n)
	}
	if d := m.sw.Options().AutoPlay; d > 0 {
		right = fmt.Sprintf("▶ %s  %s", d, right)
	}
	right = m.styles.Counter.Render(right)

	gap := m.width - lipgloss.Width(right) - 1
	left := lipgloss.NewStyle().MaxWidth(max(gap, 0)).Render(m.styles.Title.Render(" " + title))
	pad := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", pad) + right
}

func (m *Model) renderFooter() string {
	if ti := m.inputHandler.TextInput(); ti != nil {
		return m.styles.Prompt.Render(ti.View())
	}
	if m.status != "" {
		if m.statusErr {
			return m.styles.StatusError.Render(m.status)
		}
		return m.styles.Status.Render(m.status)
	}
	return m.help.View(m.inputHandler.KeyMap())
}

// renderTrack places every panel at its track position and cuts out the
// visible window
func (m *Model) renderTrack(w, h int) string {
	f := m.frame
	g := f.Geometry
	if !g.Ready() {
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, "")
	}

	vertical := f.Axis == swiper.Vertical
	extent := w
	if vertical {
		extent = h
	}
	pageSize := int(math.Round(g.PageSize))
	pw := int(math.Round(g.PageWidth))
	ph := int(math.Round(g.PageHeight))
	offset := m.offsetNow()

	var placements []views.Placement
	for i, p := range m.panels.Panels {
		over := 0.0
		if i < len(f.Overrides) {
			over = f.Overrides[i]
		}
		pos := int(math.Round(float64(i)*g.PageSize+over)) + offset
		if pos+pageSize <= 0 || pos >= extent {
			continue
		}
		placements = append(placements, views.Placement{
			Lines: views.RenderPanel(p, pw, ph, m.styles, i == f.Logical),
			Pos:   pos,
		})
	}
	return views.ComposeTrack(placements, pageSize, w, h, vertical)
}
