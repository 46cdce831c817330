package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"swipe/internal/ui/input/types"
)

type FindMode struct {
	TextInputMode
}

func NewFindMode(ti *textinput.Model) *FindMode {
	return &FindMode{
		TextInputMode: NewTextInputMode(types.ModeFind, "find", "Find: ", ti),
	}
}
