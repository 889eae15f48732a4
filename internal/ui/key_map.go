package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the program editor.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	left   key.Binding
	right  key.Binding
	edit   key.Binding
	commit key.Binding
	cancel key.Binding
	add    key.Binding
	del    key.Binding
	save   key.Binding
	focus  key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit cell"),
		),
		commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add exercise"),
		),
		del: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete row"),
		),
		save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "title/table"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
