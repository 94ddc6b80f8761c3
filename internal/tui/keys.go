package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Success    key.Binding
	Error      key.Binding
	Info       key.Binding
	Warning    key.Binding
	Pinned     key.Binding
	DismissNew key.Binding
	DismissOld key.Binding
	Clear      key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Warning:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Pinned:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pinned info")),
		DismissNew: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss newest")),
		DismissOld: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "dismiss oldest")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Info, k.Warning, k.DismissNew, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error, k.Info, k.Warning, k.Pinned},
		{k.DismissNew, k.DismissOld, k.Clear},
		{k.ToggleHelp, k.Quit},
	}
}
