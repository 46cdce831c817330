package views

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pagination draws one dot per panel, the active one in the configured color
type Pagination struct {
	model paginator.Model
}

// NewPagination creates dots colored with color (any lipgloss color string)
func NewPagination(color string, styles *Styles) *Pagination {
	m := paginator.New()
	m.Type = paginator.Dots
	m.PerPage = 1
	m.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●") + " "
	m.InactiveDot = styles.InactiveDot.Render("○") + " "
	return &Pagination{model: m}
}

// SetColor changes the active dot color
func (p *Pagination) SetColor(color string) {
	p.model.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●") + " "
}

func (p *Pagination) dotWidth() int {
	return ansi.StringWidth(p.model.InactiveDot)
}

func (p *Pagination) left(total, width int) int {
	return max(0, (width-total*p.dotWidth())/2)
}

// Render returns the dots centered in width cells
func (p *Pagination) Render(page, total, width int) string {
	if total <= 0 {
		return ""
	}
	p.model.SetTotalPages(total)
	p.model.Page = page
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, p.model.View())
}

// HitTest maps a column of the rendered row to a page
func (p *Pagination) HitTest(x, total, width int) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	rel := x - p.left(total, width)
	if rel < 0 {
		return 0, false
	}
	page := rel / p.dotWidth()
	if page >= total {
		return 0, false
	}
	return page, true
}
