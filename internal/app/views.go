package app

import (
	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/config"
	"github.com/Akashdeep-Patra/playbooks/internal/source"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/views"
)

// NewViews builds one view per mode.
func NewViews(src source.Service, cfg *config.Config) map[common.Mode]common.View {
	styles := ui.DefaultStyles()
	list := views.DefaultListKeys()
	binds, _ := cfg.Keybindings() // errors are reported by Model.Init

	return map[common.Mode]common.View{
		common.ModeFiles:    views.NewFilesView(src, cfg.SortFiles, styles, list),
		common.ModePlaybook: views.NewPlaybookView(src, cfg.IgnoreComments, styles, list),
		common.ModeUsage:    views.NewUsageView(UsageRows(DefaultKeyMap(), list, binds), styles),
	}
}

// UsageRows lists every binding for the usage table.
func UsageRows(keys KeyMap, list views.ListKeys, binds config.Keybindings) []components.UsageRow {
	const (
		all   = "All"
		lists = "FilePicker, Playbook"
	)
	return []components.UsageRow{
		{Key: "esc / ctrl+c", Action: "Quit", Modes: all},
		{Key: "← / →", Action: "Previous / next mode", Modes: all},
		{Key: keys.Jump[0].Help().Key + " .. " + keys.Jump[2].Help().Key, Action: "Jump to mode", Modes: all},
		{Key: list.Down.Help().Key, Action: "Move down", Modes: lists},
		{Key: list.Up.Help().Key, Action: "Move up", Modes: lists},
		{Key: "enter", Action: "Open playbook", Modes: "FilePicker"},
		{Key: "enter", Action: "Pick line", Modes: "Playbook"},
		{Key: "a..z 0..9", Action: "Type filter", Modes: lists},
		{Key: keys.Backspace.Help().Key, Action: "Delete filter character", Modes: lists},
		{Key: binds.Edit.Help().Key, Action: "Edit file", Modes: lists, Configurable: true},
		{Key: binds.Reload.Help().Key, Action: "Reload", Modes: all, Configurable: true},
		{Key: binds.SwitchFilterID.Help().Key, Action: "Toggle filter by ID", Modes: lists, Configurable: true},
	}
}
