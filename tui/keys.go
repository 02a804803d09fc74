package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the preview's key bindings
type keyMap struct {
	Mode       key.Binding
	Prev       key.Binding
	Next       key.Binding
	NewTab     key.Binding
	CloseTab   key.Binding
	Fullscreen key.Binding
	Sync       key.Binding
	Narrower   key.Binding
	Wider      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view (single line)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Prev, k.NewTab, k.CloseTab, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view (multiple columns)
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Prev, k.Next},
		{k.NewTab, k.CloseTab, k.Fullscreen, k.Sync},
		{k.Narrower, k.Wider, k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "next mode"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "switch tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←/→", "switch tab"),
	),
	NewTab: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new tab"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close tab"),
	),
	Fullscreen: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fullscreen"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sync panes"),
	),
	Narrower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-/+", "width"),
	),
	Wider: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("-/+", "width"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
