package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Open    key.Binding
	New     key.Binding
	Delete  key.Binding
	Details key.Binding
	Copy    key.Binding
	Reload  key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		Open:    key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open folder")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Details: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "details")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Delete, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.New, k.Delete, k.Details},
		{k.Copy, k.Reload, k.Dismiss},
		{k.Help, k.Quit},
	}
}
