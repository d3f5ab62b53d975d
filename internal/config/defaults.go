package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
)

// ErrInvalidKeybinding is returned for keybinding strings that are not of
// the form "ctrl+e" or "Ctrl e".
var ErrInvalidKeybinding = errors.New("invalid keybinding")

// Keybindings are the user-configurable actions.
type Keybindings struct {
	Edit           key.Binding
	Reload         key.Binding
	SwitchFilterID key.Binding
}

// DefaultKeybindings returns the built-in keybindings.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Edit:           newBinding("ctrl+e", "edit file"),
		Reload:         newBinding("ctrl+r", "reload"),
		SwitchFilterID: newBinding("ctrl+t", "filter by id"),
	}
}

// Keybindings parses the configured bindings. On error the defaults are
// returned along with the error so the caller can keep running.
func (c *Config) Keybindings() (Keybindings, error) {
	kb := DefaultKeybindings()
	specs := []struct {
		name  string
		value string
		dst   *key.Binding
		help  string
	}{
		{"bind_edit", c.BindEdit, &kb.Edit, "edit file"},
		{"bind_reload", c.BindReload, &kb.Reload, "reload"},
		{"bind_switch_filter_id", c.BindSwitchFilterID, &kb.SwitchFilterID, "filter by id"},
	}

	parsed := make([]key.Binding, len(specs))
	for i, s := range specs {
		if s.value == "" {
			parsed[i] = *s.dst
			continue
		}
		k, err := ParseKey(s.value)
		if err != nil {
			return DefaultKeybindings(), fmt.Errorf("%s: %w", s.name, err)
		}
		parsed[i] = newBinding(k, s.help)
	}
	for i, s := range specs {
		*s.dst = parsed[i]
	}
	return kb, nil
}

// modifiers accepted in keybinding strings, in bubbletea's order.
var modifiers = []string{"ctrl", "alt"}

// ParseKey normalises a keybinding to bubbletea's key string. Both
// "ctrl+e" and "Ctrl e" yield "ctrl+e".
func ParseKey(s string) (string, error) {
	var mod, char string
	if parts := strings.Fields(s); len(parts) == 2 {
		mod, char = parts[0], parts[1]
	} else if before, after, ok := strings.Cut(strings.TrimSpace(s), "+"); ok && len(parts) == 1 {
		mod, char = before, after
	} else {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeybinding, s)
	}

	mod = strings.ToLower(mod)
	valid := false
	for _, m := range modifiers {
		if mod == m {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("%w: unknown modifier %q", ErrInvalidKeybinding, mod)
	}
	if utf8.RuneCountInString(char) != 1 {
		return "", fmt.Errorf("%w: expected a single key character in %q", ErrInvalidKeybinding, s)
	}
	return mod + "+" + strings.ToLower(char), nil
}

func newBinding(k, help string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
}
