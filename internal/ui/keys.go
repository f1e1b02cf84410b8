package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Next, Prev, Done, Help, Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next owner")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev owner")),
		Done: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "done")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Done, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev},
		{k.Done, k.Help, k.Quit},
	}
}
