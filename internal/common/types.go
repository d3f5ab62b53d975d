package common

import (
	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Modes ───────────────────────────────────────────────────────────────────

// Mode identifies which list (or the usage screen) is active. Modes form a
// ring: Next and Prev wrap around.
type Mode int

const (
	ModeFiles Mode = iota + 1
	ModePlaybook
	ModeUsage
)

// ModeMeta describes a mode for display purposes.
type ModeMeta struct {
	Mode Mode
	Name string // Display name shown in the tab bar.
	Icon string // Unicode icon (nerdfont-free, works in all terminals).
}

// AllModes is the ordered list of modes.
var AllModes = []ModeMeta{
	{ModeFiles, "FilePicker", "▤"},
	{ModePlaybook, "Playbook", "▶"},
	{ModeUsage, "Usage", "?"},
}

// Modes returns every mode in ordinal order.
func Modes() []Mode {
	out := make([]Mode, len(AllModes))
	for i, meta := range AllModes {
		out[i] = meta.Mode
	}
	return out
}

// ModeFromOrdinal returns the mode with the given 1-based ordinal.
func ModeFromOrdinal(n int) (Mode, bool) {
	if n < int(ModeFiles) || n > int(ModeUsage) {
		return 0, false
	}
	return Mode(n), true
}

// Next returns the following mode, wrapping to the first one.
func (m Mode) Next() Mode {
	if next, ok := ModeFromOrdinal(int(m) + 1); ok {
		return next
	}
	return ModeFiles
}

// Prev returns the preceding mode, wrapping to the last one.
func (m Mode) Prev() Mode {
	if prev, ok := ModeFromOrdinal(int(m) - 1); ok {
		return prev
	}
	return ModeUsage
}

// String returns the display name.
func (m Mode) String() string {
	for _, meta := range AllModes {
		if meta.Mode == m {
			return meta.Name
		}
	}
	return "Unknown"
}

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals views to reload data.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// OpenPlaybookMsg asks the playbook view to load the named file.
type OpenPlaybookMsg struct{ Name string }

// PlaybookOpenedMsg reports that a playbook was loaded successfully.
type PlaybookOpenedMsg struct{ Name string }

// PickMsg carries the playbook line chosen by the user.
type PickMsg struct{ Line string }

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every mode view must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// SetFilter replaces the active query and re-filters the list.
	SetFilter(f filter.Filter)

	// EditTarget returns the file the edit key should open, relative to
	// the playbook root, or "" when there is nothing to edit.
	EditTarget() string
}
