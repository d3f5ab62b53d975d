package views

import (
	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// UsageView shows the keybinding table. The table scrolls when the
// terminal is shorter than it.
type UsageView struct {
	rows   []components.UsageRow
	styles ui.Styles
	width  int
	height int
	vp     viewport.Model
}

// NewUsageView creates a UsageView for the given rows.
func NewUsageView(rows []components.UsageRow, styles ui.Styles) *UsageView {
	return &UsageView{rows: rows, styles: styles, vp: viewport.New(0, 0)}
}

func (v *UsageView) Init() tea.Cmd { return nil }

func (v *UsageView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	v.vp.SetContent(components.RenderUsage(v.styles, v.rows, w))
}

func (v *UsageView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *UsageView) View() string {
	if v.width == 0 {
		return components.RenderUsage(v.styles, v.rows, 0)
	}
	return v.vp.View()
}

func (v *UsageView) SetFilter(filter.Filter) {}

func (v *UsageView) EditTarget() string { return "" }

func (v *UsageView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "↑/↓", Desc: "Scroll"},
	}
}
