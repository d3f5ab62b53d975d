package components

import (
	"strings"
	"unicode/utf8"

	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// TabInfo describes a single tab for rendering.
type TabInfo struct {
	Name   string
	Icon   string
	Active bool
}

// tabDisplayMode controls how tab labels are rendered.
type tabDisplayMode int

const (
	tabDisplayFull  tabDisplayMode = iota // "▤ FilePicker"
	tabDisplayShort                       // "▤ Fil"
	tabDisplayIcon                        // "▤"
)

// TabBarRows is the number of screen rows the tab bar occupies
// (one tab row plus the underline row).
const TabBarRows = 2

// safeIconWidth returns a conservative width estimate for a Unicode icon.
// Some terminals draw symbols such as ▤ or ▶ double-width even though
// runewidth reports them as single-width.
func safeIconWidth(icon string) int {
	w := 0
	for _, r := range icon {
		if r < 128 {
			w++
		} else {
			w += 2
		}
	}
	return w
}

// tabLabelWidth returns the visual width of a tab in the given display mode.
// Layout: " LABEL " (1 space + label + 1 space).
func tabLabelWidth(tab TabInfo, mode tabDisplayMode) int {
	iw := safeIconWidth(tab.Icon)
	switch mode {
	case tabDisplayFull:
		return 1 + iw + 1 + utf8.RuneCountInString(tab.Name) + 1
	case tabDisplayShort:
		return 1 + iw + 1 + min(utf8.RuneCountInString(tab.Name), 3) + 1
	default:
		return 1 + iw + 1
	}
}

// shortName returns a truncated name (max 3 runes).
func shortName(name string) string {
	runes := []rune(name)
	if len(runes) <= 3 {
		return name
	}
	return string(runes[:3])
}

// bestMode picks the widest display mode whose labels fit on one row.
func bestMode(tabs []TabInfo, width int) tabDisplayMode {
	for _, mode := range []tabDisplayMode{tabDisplayFull, tabDisplayShort} {
		w := 1 // left padding
		for _, tab := range tabs {
			w += tabLabelWidth(tab, mode)
		}
		if w <= width {
			return mode
		}
	}
	return tabDisplayIcon
}

// RenderTabs renders the mode ribbon: a single row of tabs that degrades from
// full names to abbreviations to icons as the terminal narrows, followed by
// an underline accenting the active tab.
func RenderTabs(styles ui.Styles, tabs []TabInfo, width int) string {
	t := styles.Theme
	mode := bestMode(tabs, width)

	activeStyle := styles.Title
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var row strings.Builder
	row.WriteByte(' ')
	col := 1
	activeStart, activeEnd := -1, -1

	for _, tab := range tabs {
		var label string
		switch mode {
		case tabDisplayFull:
			label = tab.Icon + " " + tab.Name
		case tabDisplayShort:
			label = tab.Icon + " " + shortName(tab.Name)
		default:
			label = tab.Icon
		}

		var styled string
		if tab.Active {
			styled = " " + activeStyle.Render(label) + " "
		} else {
			styled = " " + inactiveStyle.Render(label) + " "
		}

		w := lipgloss.Width(styled)
		if tab.Active {
			activeStart, activeEnd = col, col+w
		}
		row.WriteString(styled)
		col += w
	}

	tabRow := styles.TabBar.Width(width).MaxWidth(width).Render(row.String())

	borderStyle := lipgloss.NewStyle().Foreground(t.Border)
	accentStyle := styles.Title
	underline := buildUnderline(width, activeStart, activeEnd, borderStyle, accentStyle, "─", "━")

	hint := lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true).Render("←/→  alt+1..3")
	hintW := lipgloss.Width(hint)
	if hintW+4 < width {
		hintStart := width - hintW - 1
		underline = buildUnderline(hintStart, activeStart, activeEnd, borderStyle, accentStyle, "─", "━") + " " + hint
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabRow, lipgloss.NewStyle().Width(width).Render(underline))
}

// buildUnderline builds a width-wide underline string with a bold accent
// segment between activeStart..activeEnd and thin segments elsewhere.
func buildUnderline(width, activeStart, activeEnd int, borderSt, accentSt lipgloss.Style, thin, bold string) string {
	if width <= 0 {
		return ""
	}
	if activeStart < 0 || activeEnd < 0 {
		return borderSt.Render(strings.Repeat(thin, width))
	}
	activeEnd = min(activeEnd, width)
	activeStart = min(activeStart, width)

	var b strings.Builder
	b.Grow(width * 4)
	if activeStart > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, activeStart)))
	}
	if seg := activeEnd - activeStart; seg > 0 {
		b.WriteString(accentSt.Render(strings.Repeat(bold, seg)))
	}
	if rem := width - activeEnd; rem > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, rem)))
	}
	return b.String()
}

// TabAt returns the index of the tab drawn at column x of the tab row, using
// the same layout as RenderTabs.
func TabAt(tabs []TabInfo, width, x int) (int, bool) {
	mode := bestMode(tabs, width)
	col := 1
	for i, tab := range tabs {
		w := tabLabelWidth(tab, mode)
		if x >= col && x < col+w {
			return i, true
		}
		col += w
	}
	return 0, false
}
