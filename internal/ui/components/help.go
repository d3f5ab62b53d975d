package components

import (
	"strings"

	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// HelpEntry is a single key-description pair shown in the footer hints.
type HelpEntry struct {
	Key  string
	Desc string
}

// UsageRow is one line of the usage table.
type UsageRow struct {
	Key          string
	Action       string
	Modes        string
	Configurable bool
}

// RenderUsage renders the keybinding table shown in usage mode.
func RenderUsage(styles ui.Styles, rows []UsageRow, width int) string {
	t := styles.Theme

	headerStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	keyStyle := cellStyle.Foreground(t.Accent).Bold(true)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("KeyBinding", "Action", "Mode", "Configurable").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			default:
				return cellStyle
			}
		})
	if width > 0 {
		tbl = tbl.Width(width)
	}

	for _, r := range rows {
		conf := "False"
		if r.Configurable {
			conf = "True"
		}
		tbl = tbl.Row(r.Key, r.Action, r.Modes, conf)
	}
	return tbl.Render()
}

// RenderHints renders a single-line list of key hints.
func RenderHints(styles ui.Styles, entries []HelpEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, ui.RenderKeyValue(styles, e.Key, e.Desc))
	}
	return strings.Join(parts, "  ")
}
