package views

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderPopup centers content in a bordered box over a width x height area
func RenderPopup(content string, width, height int, styles *Styles) string {
	box := styles.Popup.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
