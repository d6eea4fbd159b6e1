package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync    key.Binding
	refresh key.Binding
	details key.Binding
	copy    key.Binding
	version key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "synchroniser")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rafraîchir le cache")),
	details: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "détails")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copier le rapport")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fermer")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quitter")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.sync, k.refresh, k.details, k.copy, k.version, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
