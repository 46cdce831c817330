package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"swipe/internal/ui/input/types"
)

type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Page: ", ti),
	}
}

// Enter limits the input to page numbers
func (m *GotoMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.CharLimit = 6
		m.textInput.Placeholder = "1"
	}
	return nil
}

func (m *GotoMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.CharLimit = 0
		m.textInput.Placeholder = ""
	}
	return m.TextInputMode.Exit(ctx)
}
