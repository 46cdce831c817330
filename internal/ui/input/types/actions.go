package types

// Navigation actions
type NavigateAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GotoPageAction jumps to a zero-based logical page
type GotoPageAction struct {
	Page int
}

func (a GotoPageAction) Type() string { return "goto_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ToggleAutoplayAction struct{}

func (a ToggleAutoplayAction) Type() string { return "toggle_autoplay" }

type OpenPanelAction struct{}

func (a OpenPanelAction) Type() string { return "open_panel" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
