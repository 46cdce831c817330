package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swipe/internal/domain"
)

// RenderPanel draws a panel as exactly height lines of exactly width cells
func RenderPanel(p domain.Panel, width, height int, styles *Styles, active bool) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width < 5 || height < 3 {
		return blank(width, height)
	}

	border := styles.PanelBorder
	if active {
		border = styles.ActiveBorder
	}
	if p.Color != "" {
		border = lipgloss.Color(p.Color)
	}

	innerW := width - 4 // border and one cell of padding each side
	innerH := height - 2

	lines := []string{styles.PanelTitle.Render(p.DisplayTitle()), ""}
	body := strings.ReplaceAll(p.Body, "\t", "    ")
	lines = append(lines, strings.Split(body, "\n")...)
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, innerW, "…")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Height(innerH).
		Render(strings.Join(lines, "\n"))

	return fit(strings.Split(box, "\n"), width, height)
}

// fit pads or cuts lines to the exact block size
func fit(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}

func fitLine(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		line = ansi.Truncate(line, width, "")
		return line + strings.Repeat(" ", width-ansi.StringWidth(line))
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}

func blank(width, height int) []string {
	out := make([]string, height)
	for i := range out {
		out[i] = strings.Repeat(" ", width)
	}
	return out
}
