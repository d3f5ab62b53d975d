package components

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/picker"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// ListChromeRows is the number of rows RenderList spends outside the record
// rows: the search block, the "more above" line and the footer.
const ListChromeRows = 3

// ListData is everything RenderList needs from a list view.
type ListData[T filter.Record] struct {
	Rows     iter.Seq2[int, T]
	Selected int
	Count    int
	Query    filter.Filter
	Empty    string // shown instead of rows when Count is 0
}

// ListRowsHeight returns how many record rows fit in a list of height rows.
func ListRowsHeight(height int) int {
	return max(1, height-ListChromeRows)
}

// RenderList draws a filtered list into a width x height box. Only the rows
// inside the viewport window around the selection are drawn; the rows
// hidden above and below are summarised by "+ N more" counters.
func RenderList[T filter.Record](styles ui.Styles, data ListData[T], width, height int) string {
	rowsH := ListRowsHeight(height)
	win := picker.NewWindow(data.Selected, rowsH)

	scrollbar := ""
	if data.Count > rowsH {
		pct := float64(win.Begin) / float64(data.Count-rowsH)
		scrollbar = RenderScrollbar(styles, rowsH, data.Count, rowsH, pct)
	}
	rowW := width
	if scrollbar != "" {
		rowW--
	}

	lines := make([]string, 0, height)
	lines = append(lines, renderSearch(styles, data.Query))
	lines = append(lines, ui.AlignRight("", renderMore(styles, win.Above()), width))

	var rows []string
	if data.Rows != nil {
		for i, rec := range data.Rows {
			if i > win.End {
				break
			}
			if !win.Contains(i) {
				continue
			}
			rows = append(rows, renderRow(styles, rec, rowW, i == data.Selected))
		}
	}
	if data.Count == 0 && data.Empty != "" {
		rows = append(rows, styles.Muted.PaddingLeft(2).Render(data.Empty))
	}
	for len(rows) < rowsH {
		rows = append(rows, "")
	}

	body := strings.Join(rows, "\n")
	if scrollbar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(rowW).Render(body), scrollbar)
	}
	lines = append(lines, body)

	all := styles.Counter.Render(fmt.Sprintf("  All: %d", data.Count))
	lines = append(lines, ui.AlignRight(all, renderMore(styles, win.Below(data.Count)), width))

	return strings.Join(lines, "\n")
}

func renderSearch(styles ui.Styles, q filter.Filter) string {
	label := styles.SearchLabel.Render(fmt.Sprintf("  Search (by %s):", q.Mode))
	return label + " " + styles.SearchText.Render(q.Text) + styles.Muted.Render("_")
}

// renderMore renders the "+ N more" counter; empty when n is zero.
func renderMore(styles ui.Styles, n int) string {
	if n <= 0 {
		return ""
	}
	return styles.Counter.Render(fmt.Sprintf("+ %d more  ", n))
}

// FormatRow returns the plain "<id>. <name>" text of a record, truncated to
// width runes.
func FormatRow(rec filter.Record, width int) string {
	return ui.Truncate(fmt.Sprintf("%d. %s", rec.ID(), rec.Name()), width)
}

func renderRow(styles ui.Styles, rec filter.Record, width int, selected bool) string {
	if selected {
		text := FormatRow(rec, width-3)
		return styles.ListSelected.Width(width).Render("▸ " + text)
	}
	return styles.ListItem.Render(FormatRow(rec, width-3))
}
