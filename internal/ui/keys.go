package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Browse  key.Binding
	Clear   key.Binding
	Actions key.Binding
	Submit  key.Binding
	Next    key.Binding
	Cancel  key.Binding
	Logs    key.Binding
	Help    key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
	Force   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Browse:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear root")),
		Actions: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "actions")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next input")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Logs:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Browse, k.Clear, k.Actions, k.Logs, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Browse, k.Clear, k.Actions},
		{k.Submit, k.Next, k.Cancel},
		{k.Up, k.Down, k.Logs, k.Help, k.Quit},
	}
}

// armedKeys is the footer while a command awaits input.
type armedKeys struct{ keyMap }

func (k armedKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Cancel}
}
