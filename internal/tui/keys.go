package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	newItem     key.Binding
	edit        key.Binding
	delete      key.Binding
	copy        key.Binding
	profile     key.Binding
	save        key.Binding
	removeImage key.Binding
	uploadImage key.Binding
	yes         key.Binding
	no          key.Binding
	version     key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("l")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	edit:        key.NewBinding(key.WithKeys("e", "enter")),
	delete:      key.NewBinding(key.WithKeys("d", "ctrl+d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	profile:     key.NewBinding(key.WithKeys("p")),
	save:        key.NewBinding(key.WithKeys("ctrl+s", "enter")),
	removeImage: key.NewBinding(key.WithKeys("ctrl+r")),
	uploadImage: key.NewBinding(key.WithKeys("ctrl+u")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
	version:     key.NewBinding(key.WithKeys("v")),
}
