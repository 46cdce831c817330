package input

import (
	"github.com/charmbracelet/bubbles/key"

	"swipe/internal/ui/input/modes"
)

// KeyMap holds the normal-mode bindings. Prev/Next follow the paging axis.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	Page      key.Binding
	Goto      key.Binding
	Find      key.Binding
	Autoplay  key.Binding
	Open      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns bindings for a horizontal or vertical swiper
func DefaultKeyMap(vertical bool) KeyMap {
	km := KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Page: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "page"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to page"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoplay"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
	if vertical {
		km.Prev.SetKeys("up", "k")
		km.Prev.SetHelp("↑/k", "prev")
		km.Next.SetKeys("down", "j")
		km.Next.SetHelp("↓/j", "next")
	}
	return km
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Autoplay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Page, k.Goto, k.Find},
		{k.Autoplay, k.Open, k.Reload},
		{k.Help, k.Quit},
	}
}

func (k KeyMap) bindings() modes.Bindings {
	return modes.Bindings{
		Prev: k.Prev, Next: k.Next, First: k.First, Last: k.Last,
		Page: k.Page, Goto: k.Goto, Find: k.Find,
		Autoplay: k.Autoplay, Open: k.Open, Reload: k.Reload,
		Help: k.Help, Quit: k.Quit, ForceQuit: k.ForceQuit,
	}
}
