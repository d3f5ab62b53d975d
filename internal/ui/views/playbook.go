package views

import (
	"fmt"

	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/source"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailMinWidth is the terminal width from which the selected line is also
// shown in full in a side panel.
const detailMinWidth = 100

// PlaybookView lists the kept lines of the opened playbook.
type PlaybookView struct {
	src            source.Service
	ignoreComments bool
	styles         ui.Styles
	keys           ListKeys
	width          int
	height         int

	name string
	list recordList[source.Line]

	detail viewport.Model
}

type playbookLoadedMsg struct {
	name   string
	lines  []source.Line
	opened bool // false for reloads of the already open playbook
}

// NewPlaybookView creates a new PlaybookView with no playbook open.
func NewPlaybookView(src source.Service, ignoreComments bool, styles ui.Styles, keys ListKeys) *PlaybookView {
	return &PlaybookView{
		src:            src,
		ignoreComments: ignoreComments,
		styles:         styles,
		keys:           keys,
		list:           newRecordList[source.Line](),
		detail:         viewport.New(0, 0),
	}
}

func (v *PlaybookView) Init() tea.Cmd { return nil }

func (v *PlaybookView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.detail.Width = max(0, v.detailWidth()-4)
	v.detail.Height = max(0, h-2)
	v.syncDetail()
}

func (v *PlaybookView) load(name string, opened bool) tea.Cmd {
	return func() tea.Msg {
		lines, err := v.src.Playbook(name, v.ignoreComments)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return playbookLoadedMsg{name: name, lines: lines, opened: opened}
	}
}

func (v *PlaybookView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.OpenPlaybookMsg:
		return v, v.load(msg.Name, true)

	case playbookLoadedMsg:
		v.name = msg.name
		v.list.set(msg.lines)
		v.syncDetail()
		if msg.opened {
			name := msg.name
			return v, func() tea.Msg { return common.PlaybookOpenedMsg{Name: name} }
		}
		return v, nil

	case common.RefreshMsg:
		if v.name == "" {
			return v, nil
		}
		return v, v.load(v.name, false)

	case tea.KeyMsg:
		if v.list.navigate(v.keys, msg) {
			v.syncDetail()
			return v, nil
		}
		if key.Matches(msg, v.keys.Select) {
			if l, ok := v.list.current(); ok {
				line := l.Name()
				return v, func() tea.Msg { return common.PickMsg{Line: line} }
			}
		}

	case tea.MouseMsg:
		if v.list.navigate(v.keys, msg) {
			v.syncDetail()
		}
	}
	return v, nil
}

func (v *PlaybookView) SetFilter(f filter.Filter) {
	v.list.setFilter(f)
	v.syncDetail()
}

// EditTarget returns the open playbook.
func (v *PlaybookView) EditTarget() string { return v.name }

func (v *PlaybookView) showDetail() bool { return v.width >= detailMinWidth }

func (v *PlaybookView) detailWidth() int {
	if !v.showDetail() {
		return 0
	}
	return v.width * 2 / 5
}

// syncDetail puts the selected line, wrapped, into the detail panel.
func (v *PlaybookView) syncDetail() {
	if !v.showDetail() {
		return
	}
	l, ok := v.list.current()
	if !ok {
		v.detail.SetContent("")
		return
	}
	header := v.styles.RecordID.Render(fmt.Sprintf("#%d", l.ID()))
	body := lipgloss.NewStyle().Width(v.detail.Width).Render(l.Name())
	v.detail.SetContent(header + "\n\n" + body)
	v.detail.GotoTop()
}

func (v *PlaybookView) View() string {
	var empty string
	switch {
	case v.name == "":
		empty = "No playbook open. Pick one in FilePicker"
	case v.list.mgr.Total() == 0:
		empty = "Playbook is empty"
	case v.list.mgr.Count() == 0:
		empty = v.list.noMatch()
	}

	if !v.showDetail() {
		return v.list.render(v.styles, empty, v.width, v.height)
	}
	dw := v.detailWidth()
	left := v.list.render(v.styles, empty, v.width-dw, v.height)
	right := v.styles.Panel.Width(dw - 2).Height(v.height - 2).Render(v.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (v *PlaybookView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter", Desc: "Pick line"},
	}
}
