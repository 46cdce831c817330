package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipe/internal/ui/input/types"
)

// Bindings is the subset of key bindings normal mode reacts to
type Bindings struct {
	Prev, Next, First, Last key.Binding
	Page, Goto, Find        key.Binding
	Autoplay, Open, Reload  key.Binding
	Help, Quit, ForceQuit   key.Binding
}

type NormalMode struct {
	keys Bindings
}

func NewNormalMode(keys Bindings) *NormalMode {
	return &NormalMode{keys: keys}
}

// SetBindings swaps the bindings, e.g. after the paging axis changed
func (m *NormalMode) SetBindings(keys Bindings) {
	m.keys = keys
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true
	}

	if ctx.PageCount() == 0 {
		// nothing to navigate; swallow navigation keys
		return nil, true
	}

	switch {
	case key.Matches(msg, k.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}, true

	case key.Matches(msg, k.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, k.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case key.Matches(msg, k.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case key.Matches(msg, k.Page):
		page := int(msg.String()[0] - '1')
		if page >= ctx.PageCount() {
			return nil, true
		}
		return []types.Action{types.GotoPageAction{Page: page}}, true

	case key.Matches(msg, k.Goto):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case key.Matches(msg, k.Find):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFind}}, true

	case key.Matches(msg, k.Autoplay):
		return []types.Action{types.ToggleAutoplayAction{}}, true

	case key.Matches(msg, k.Open):
		return []types.Action{types.OpenPanelAction{}}, true
	}

	return nil, false
}
