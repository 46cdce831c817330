package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Counter      lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Prompt       lipgloss.Style
	Help         lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelBorder  lipgloss.Color
	ActiveBorder lipgloss.Color
	InactiveDot  lipgloss.Style
	Popup        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		PanelTitle:   lipgloss.NewStyle().Bold(true),
		PanelBorder:  lipgloss.Color("241"),
		ActiveBorder: lipgloss.Color("99"),
		InactiveDot:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
	}
}
