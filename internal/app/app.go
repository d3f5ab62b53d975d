package app

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/config"
	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/output"
	"github.com/Akashdeep-Patra/playbooks/internal/source"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the top-level Bubbletea model. It owns the mode ring and the
// filter query; views own their lists.
type Model struct {
	src     *source.CachedService
	cfg     *config.Config
	sink    output.Sink
	styles  ui.Styles
	keys    KeyMap
	binds   config.Keybindings
	bindErr error

	width  int
	height int

	mode     common.Mode
	query    filter.Filter
	views    map[common.Mode]common.View
	playbook string
	watching bool

	statusMsg string
	statusErr bool
	statusExp time.Time
}

// New creates a new application model. views must hold one view per mode.
func New(src *source.CachedService, cfg *config.Config, sink output.Sink, views map[common.Mode]common.View) Model {
	binds, err := cfg.Keybindings()
	return Model{
		src:     src,
		cfg:     cfg,
		sink:    sink,
		styles:  ui.DefaultStyles(),
		keys:    DefaultKeyMap(),
		binds:   binds,
		bindErr: err,
		mode:    common.ModeFiles,
		views:   views,
	}
}

// SetWatching records whether a filesystem watcher feeds this model.
func (m *Model) SetWatching(on bool) { m.watching = on }

// Init loads the file list and reports a broken keybinding config.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, mode := range common.Modes() {
		if v, ok := m.views[mode]; ok {
			cmds = append(cmds, v.Init())
		}
	}
	if m.bindErr != nil {
		cmds = append(cmds, common.CmdErr(fmt.Errorf("keybindings: %w (using defaults)", m.bindErr)))
	}
	return tea.Batch(cmds...)
}

// Update processes messages. Keys go to the active view only; every other
// message is broadcast so async load results reach their view whichever
// mode is active.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		for _, v := range m.views {
			v.SetSize(m.width, contentH)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case common.PlaybookOpenedMsg:
		m.playbook = msg.Name
		m.setMode(common.ModePlaybook)
		return m, nil

	case common.PickMsg:
		return m, m.pick(msg.Line)

	case common.RefreshMsg:
		m.src.Invalidate()

	case common.ErrMsg:
		log.Printf("error: %v", msg.Err)
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.binds.Edit):
		return m, m.edit()
	case key.Matches(msg, m.binds.Reload):
		return m, tea.Batch(common.CmdRefresh, common.CmdInfo("Reloaded"))
	case key.Matches(msg, m.binds.SwitchFilterID):
		if m.isList() {
			m.query.Mode = m.query.Mode.SwitchTo(filter.ModeID)
			m.applyQuery()
		}
		return m, nil
	case key.Matches(msg, m.keys.NextMode):
		m.setMode(m.mode.Next())
		return m, nil
	case key.Matches(msg, m.keys.PrevMode):
		m.setMode(m.mode.Prev())
		return m, nil
	case key.Matches(msg, m.keys.Backspace):
		if m.isList() && m.query.Text != "" {
			runes := []rune(m.query.Text)
			m.query.Text = string(runes[:len(runes)-1])
			m.applyQuery()
		}
		return m, nil
	}

	for i, b := range m.keys.Jump {
		if key.Matches(msg, b) {
			if mode, ok := common.ModeFromOrdinal(i + 1); ok && mode != m.mode {
				m.setMode(mode)
			}
			return m, nil
		}
	}

	if m.isList() && !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
		m.typeRunes(msg.Runes)
		return m, nil
	}

	return m, m.forward(msg)
}

// typeRunes extends the filter text with each rune the typing rules accept.
func (m *Model) typeRunes(runes []rune) {
	changed := false
	for _, r := range runes {
		mode, ok := filter.Accept(m.query.Text, m.query.Mode, r)
		if !ok {
			continue
		}
		m.query.Mode = mode
		m.query.Text += string(r)
		changed = true
	}
	if changed {
		m.applyQuery()
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y < components.TabBarRows {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if i, ok := components.TabAt(m.buildTabInfos(), m.width, msg.X); ok {
				if mode, ok := common.ModeFromOrdinal(i + 1); ok && mode != m.mode {
					m.setMode(mode)
				}
			}
		}
		return m, nil
	}
	msg.Y -= components.TabBarRows
	return m, m.forward(msg)
}

// setMode switches the active mode. The filter is reset on every
// transition so a query typed for one list never leaks into another.
func (m *Model) setMode(mode common.Mode) {
	m.mode = mode
	m.query = filter.Filter{}
	m.applyQuery()
}

func (m *Model) applyQuery() {
	if v, ok := m.views[m.mode]; ok {
		v.SetFilter(m.query)
	}
}

func (m Model) isList() bool {
	return m.mode == common.ModeFiles || m.mode == common.ModePlaybook
}

func (m Model) forward(msg tea.Msg) tea.Cmd {
	v, ok := m.views[m.mode]
	if !ok {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.views[m.mode] = updated
	return cmd
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for mode, v := range m.views {
		updated, cmd := v.Update(msg)
		m.views[mode] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// pick hands the chosen line to the output sinks.
func (m Model) pick(line string) tea.Cmd {
	log.Printf("picked %q", line)
	err := m.sink.Emit(line)
	if m.cfg.PrintOnExit {
		if err != nil {
			log.Printf("emit: %v", err)
		}
		return tea.Quit
	}
	if err != nil {
		return common.CmdErr(err)
	}
	if m.cfg.CopyToClipboard {
		return common.CmdInfo("Copied: " + ui.Truncate(line, 40))
	}
	return common.CmdInfo("Picked: " + ui.Truncate(line, 40))
}

// edit suspends the program and opens the active view's file in the editor.
// The lists are reloaded when the editor exits.
func (m Model) edit() tea.Cmd {
	v, ok := m.views[m.mode]
	if !ok || v.EditTarget() == "" {
		return common.CmdInfo("Nothing to edit")
	}
	path := filepath.Join(m.src.Root(), v.EditTarget())
	argv := strings.Fields(m.cfg.EditorCommand())
	if len(argv) == 0 {
		return common.CmdErr(fmt.Errorf("editor: empty command"))
	}
	c := exec.Command(argv[0], append(argv[1:], path)...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return common.ErrMsg{Err: fmt.Errorf("editor: %w", err)}
		}
		return common.RefreshMsg{}
	})
}

// View renders the entire UI. This is a pure function with no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	tabBar := components.RenderTabs(m.styles, m.buildTabInfos(), m.width)

	content := ""
	if v, ok := m.views[m.mode]; ok {
		content = v.View()
	}
	contentH := m.contentHeight()
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).MaxHeight(contentH).Render(content)

	hints := lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(" " + m.renderHints())

	bar := components.StatusBarData{
		Root:     m.src.Root(),
		Playbook: m.playbook,
		Watching: m.watching,
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		bar.Message = m.statusMsg
		bar.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, bar, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, hints, statusBar)
}

func (m Model) renderHints() string {
	entries := []components.HelpEntry{
		{Key: m.keys.Quit.Help().Key, Desc: m.keys.Quit.Help().Desc},
		{Key: "←/→", Desc: "mode"},
	}
	if v, ok := m.views[m.mode]; ok {
		entries = append(entries, v.ShortHelp()...)
	}
	if m.isList() {
		for _, b := range []key.Binding{m.binds.Edit, m.binds.Reload, m.binds.SwitchFilterID} {
			entries = append(entries, components.HelpEntry{Key: b.Help().Key, Desc: b.Help().Desc})
		}
	}
	return components.RenderHints(m.styles, entries)
}

// contentHeight is the height left for views: height minus the tab bar,
// the hints line and the status bar.
func (m Model) contentHeight() int {
	return max(1, m.height-components.TabBarRows-2)
}

func (m Model) buildTabInfos() []components.TabInfo {
	infos := make([]components.TabInfo, len(common.AllModes))
	for i, meta := range common.AllModes {
		infos[i] = components.TabInfo{
			Name:   meta.Name,
			Icon:   meta.Icon,
			Active: meta.Mode == m.mode,
		}
	}
	return infos
}
