package views

import "github.com/charmbracelet/bubbles/key"

// ListKeys are the bindings a list view reacts to. Everything else (mode
// changes, filter typing, quit) is handled by the app model.
type ListKeys struct {
	Down   key.Binding
	Up     key.Binding
	Select key.Binding
}

// DefaultListKeys returns the list navigation bindings.
func DefaultListKeys() ListKeys {
	return ListKeys{
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "Move down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Select"),
		),
	}
}
