package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle      key.Binding
	NextElement key.Binding
	PrevElement key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "favourite")),
		NextElement: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next element")),
		PrevElement: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev element")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Toggle, k.NextElement, k.PrevElement}
}
