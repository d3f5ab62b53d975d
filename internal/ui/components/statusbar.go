package components

import (
	"path/filepath"
	"strings"

	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Root     string // playbook directory
	Playbook string // currently opened playbook, if any
	Watching bool
	Message  string // transient info/error message
	IsError  bool
}

// RenderStatusBar renders the bottom status bar with sections separated by
// dim vertical bars.
//
// Wide (>= 60):   ~/playbooks  │  ▶ deploy.txt  │  ◉ watching        message
// Narrow (< 60):  ~/playbooks  │  ▶ deploy.txt                      message
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sep := lipgloss.NewStyle().Foreground(t.Border).Faint(true).Render(" │ ")

	rootStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	left := " " + rootStyle.Render(filepath.Base(data.Root))

	if data.Playbook != "" {
		left += sep + lipgloss.NewStyle().Foreground(t.Accent).Render("▶ "+data.Playbook)
	}
	if width >= 60 && data.Watching {
		left += sep + lipgloss.NewStyle().Foreground(t.Success).Render("◉ watching")
	}

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	}

	inner := width - styles.StatusBar.GetHorizontalPadding()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
