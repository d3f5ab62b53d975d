package views

import (
	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/source"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FilesView lists the playbook candidates of the working directory.
type FilesView struct {
	src    source.Service
	sorted bool
	styles ui.Styles
	keys   ListKeys
	width  int
	height int

	list   recordList[source.File]
	loaded bool
}

type filesLoadedMsg struct{ files []source.File }

// NewFilesView creates a new FilesView.
func NewFilesView(src source.Service, sorted bool, styles ui.Styles, keys ListKeys) *FilesView {
	return &FilesView{
		src:    src,
		sorted: sorted,
		styles: styles,
		keys:   keys,
		list:   newRecordList[source.File](),
	}
}

func (v *FilesView) Init() tea.Cmd { return v.load() }

func (v *FilesView) SetSize(w, h int) { v.width = w; v.height = h }

func (v *FilesView) load() tea.Cmd {
	return func() tea.Msg {
		files, err := v.src.Files(v.sorted)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return filesLoadedMsg{files: files}
	}
}

func (v *FilesView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case filesLoadedMsg:
		v.list.set(msg.files)
		v.loaded = true
		return v, nil

	case common.RefreshMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.list.navigate(v.keys, msg) {
			return v, nil
		}
		if key.Matches(msg, v.keys.Select) {
			if f, ok := v.list.current(); ok {
				name := f.Name()
				return v, func() tea.Msg { return common.OpenPlaybookMsg{Name: name} }
			}
		}

	case tea.MouseMsg:
		v.list.navigate(v.keys, msg)
	}
	return v, nil
}

func (v *FilesView) SetFilter(f filter.Filter) { v.list.setFilter(f) }

// EditTarget returns the selected file.
func (v *FilesView) EditTarget() string {
	if f, ok := v.list.current(); ok {
		return f.Name()
	}
	return ""
}

func (v *FilesView) View() string {
	var empty string
	switch {
	case !v.loaded:
		empty = "Loading..."
	case v.list.mgr.Total() == 0:
		empty = "No playbooks in this directory"
	case v.list.mgr.Count() == 0:
		empty = v.list.noMatch()
	}
	return v.list.render(v.styles, empty, v.width, v.height)
}

func (v *FilesView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter", Desc: "Open playbook"},
	}
}
