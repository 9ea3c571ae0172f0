package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the tester. Every action button of the
// tester window has a control-key binding so the input fields keep plain keys.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Display    key.Binding
	CalcHSL    key.Binding
	CalcRGB    key.Binding
	Brightness key.Binding
	Push       key.Binding
	Pop        key.Binding
	Copy       key.Binding
	ToggleDark key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Display: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show colour"),
		),
		CalcHSL: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "RGB → HSL"),
		),
		CalcRGB: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "HSL → RGB"),
		),
		Brightness: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "apply brightness"),
		),
		Push: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "push"),
		),
		Pop: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "pop"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy hex"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle dark/light mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CalcHSL, k.CalcRGB, k.Push, k.Pop, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Display},
		{k.CalcHSL, k.CalcRGB, k.Brightness},
		{k.Push, k.Pop, k.Copy},
		{k.ToggleDark, k.Help, k.Quit},
	}
}
