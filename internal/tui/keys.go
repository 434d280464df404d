package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	connect     key.Binding
	balance     key.Binding
	disconnect  key.Binding
	copyAddress key.Binding
	copyBalance key.Binding
	info        key.Binding
	help        key.Binding
	esc         key.Binding
	quit        key.Binding
}

var keys = keyMap{
	connect:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	balance:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "balance")),
	disconnect:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
	copyAddress: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy address")),
	copyBalance: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy balance")),
	info:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	esc:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.connect, k.balance, k.disconnect, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.connect, k.balance, k.disconnect},
		{k.copyAddress, k.copyBalance},
		{k.info, k.help, k.quit},
	}
}
