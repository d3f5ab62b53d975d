// Package filter decides which records stay visible while the user types a
// query. A query is matched either against the record name or against the
// decimal form of its id.
package filter

import (
	"strconv"
	"strings"
	"unicode"
)

// Record is what a list exposes to filtering.
type Record interface {
	ID() int
	Name() string
}

// Mode selects the field a filter matches against.
type Mode int

const (
	// ModeName matches the filter text anywhere in the record name.
	ModeName Mode = iota
	// ModeID matches the filter text as a prefix of the record id.
	ModeID
)

// String returns the label shown in the search block.
func (m Mode) String() string {
	if m == ModeID {
		return "ID"
	}
	return "Name"
}

// SwitchTo returns requested, or ModeName if the mode is already requested.
// Calling it twice with the same target toggles back to ModeName.
func (m Mode) SwitchTo(requested Mode) Mode {
	if m == requested {
		return ModeName
	}
	return requested
}

// Filter is a (mode, text) query. It is rebuilt from the current input on
// every keystroke.
type Filter struct {
	Mode Mode
	Text string
}

// New creates a filter.
func New(mode Mode, text string) Filter {
	return Filter{Mode: mode, Text: text}
}

// Keep reports whether r matches the filter. Empty text keeps everything.
func (f Filter) Keep(r Record) bool {
	if f.Mode == ModeID {
		return strings.HasPrefix(strconv.Itoa(r.ID()), f.Text)
	}
	if f.Text == "" {
		return true
	}
	return strings.Contains(r.Name(), f.Text)
}

// Func adapts f to a predicate over a concrete record type.
func Func[T Record](f Filter) func(T) bool {
	return func(r T) bool { return f.Keep(r) }
}

// Accept decides whether r may be appended to text. The first rune of an
// empty query picks the mode: a digit starts an id query, anything else a
// name query. Id queries take digits only and never start with 0.
func Accept(text string, mode Mode, r rune) (Mode, bool) {
	if text == "" {
		if isDigit(r) {
			mode = ModeID
		} else {
			mode = ModeName
		}
	}
	if mode == ModeID {
		if !isDigit(r) {
			return mode, false
		}
		return mode, text != "" || r != '0'
	}
	return mode, unicode.IsPrint(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
