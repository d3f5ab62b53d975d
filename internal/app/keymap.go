package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings used across the application.
// List navigation lives in views.ListKeys; the configurable actions live in
// config.Keybindings.
type KeyMap struct {
	Quit      key.Binding
	NextMode  key.Binding
	PrevMode  key.Binding
	Backspace key.Binding

	// Direct mode shortcuts, in mode order. Terminals do not report
	// ctrl+digit, so these use alt.
	Jump [3]key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		NextMode:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next mode")),
		PrevMode:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev mode")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		Jump: [3]key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "file picker")),
			key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "playbook")),
			key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "usage")),
		},
	}
}
