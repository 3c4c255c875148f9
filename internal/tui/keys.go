package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start       key.Binding
	Sample      key.Binding
	SwitchFocus key.Binding
	Hide        key.Binding
	StartOver   key.Binding
	Quit        key.Binding

	active bool
}

func newKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start"),
		),
		Sample: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "sample text"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "text/count"),
		),
		Hide: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "remove words"),
		),
		StartOver: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.active {
		return []key.Binding{k.Hide, k.StartOver, k.Quit}
	}
	return []key.Binding{k.SwitchFocus, k.Sample, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
