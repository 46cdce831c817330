package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"swipe/internal/domain"
)

// PanelPager shows a panel's full content outside the carousel
type PanelPager interface {
	Show(p domain.Panel) error
}

// ovPager runs the ov pager with the terminal released from Bubble Tea
type ovPager struct {
	program *tea.Program
}

// NewPager creates a pager bound to a running program
func NewPager(program *tea.Program) PanelPager {
	return &ovPager{program: program}
}

// Show blocks until the user leaves the pager
func (o *ovPager) Show(p domain.Panel) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}
	defer func() {
		// give ov time to leave the alternate screen before we take it back
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(pagerContent(p)))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func pagerContent(p domain.Panel) string {
	var b strings.Builder
	title := p.DisplayTitle()
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n\n")
	b.WriteString(p.Body)
	b.WriteString("\n")
	return b.String()
}

// openPanel runs the pager off the update loop
func openPanel(pager PanelPager, p domain.Panel) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{panel: p.Name, err: pager.Show(p)}
	}
}
