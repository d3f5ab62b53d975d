package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// zedTask is one entry of Zed's global tasks.json. Fields are kept raw so
// keys pbk knows nothing about survive a rewrite of the user's file.
type zedTask map[string]json.RawMessage

func (t zedTask) label() string {
	var label string
	if err := json.Unmarshal(t["label"], &label); err != nil {
		return ""
	}
	return label
}

func (t zedTask) managed() bool {
	return strings.HasPrefix(t.label(), zedLabelPrefix)
}

// Tasks whose label starts with this prefix are owned by pbk.
const zedLabelPrefix = "pbk:"

func buildZedCmd() *cobra.Command {
	zedCmd := &cobra.Command{
		Use:   "zed",
		Short: "Manage Zed IDE integration",
		Long: `Manage global Zed tasks for pbk.

Examples:
  pbk zed status
  pbk zed install
  pbk zed uninstall`,
	}

	zedCmd.AddCommand(buildZedInstallCmd())
	zedCmd.AddCommand(buildZedUninstallCmd())
	zedCmd.AddCommand(buildZedStatusCmd())

	return zedCmd
}

func buildZedInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install global Zed tasks for pbk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasksPath, existing, err := loadZedTasks()
			if err != nil {
				return err
			}

			merged := mergeZedTasks(existing, defaultZedTasks())
			if err := writeZedTasks(tasksPath, merged); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Installed pbk Zed integration at %s\n", tasksPath)
			fmt.Fprintln(out, "Open Zed and run: task: spawn -> pbk:*")
			return nil
		},
	}
}

func buildZedUninstallCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove global Zed tasks managed by pbk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasksPath, existing, err := loadZedTasks()
			if err != nil {
				return err
			}

			cleaned := removeManagedZedTasks(existing)
			removed := len(existing) - len(cleaned)
			out := cmd.OutOrStdout()
			if removed == 0 {
				fmt.Fprintln(out, "pbk integration: not installed")
				return nil
			}

			if !yes {
				confirmed := false
				err := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove %d pbk task(s) from %s?", removed, tasksPath)).
						Affirmative("Remove").
						Negative("Keep").
						Value(&confirmed),
				)).Run()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, "Aborted")
					return nil
				}
			}

			if err := writeZedTasks(tasksPath, cleaned); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed pbk Zed integration from %s\n", tasksPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func buildZedStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show global Zed integration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasksPath, existing, err := loadZedTasks()
			if err != nil {
				return err
			}

			var labels []string
			for _, t := range existing {
				if t.managed() {
					labels = append(labels, t.label())
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Zed tasks file: %s\n", tasksPath)
			if len(labels) == 0 {
				fmt.Fprintln(out, "pbk integration: not installed")
				return nil
			}

			fmt.Fprintf(out, "pbk integration: installed (%d task(s))\n", len(labels))
			for _, label := range labels {
				fmt.Fprintf(out, "  - %s\n", label)
			}
			return nil
		},
	}
}

func loadZedTasks() (string, []zedTask, error) {
	cfgDir, err := zedConfigDir()
	if err != nil {
		return "", nil, err
	}
	tasksPath := filepath.Join(cfgDir, "tasks.json")
	tasks, err := readZedTasks(tasksPath)
	return tasksPath, tasks, err
}

func zedConfigDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv("PBK_ZED_CONFIG_DIR")); override != "" {
		return override, nil
	}

	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "zed"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "zed"), nil
}

func readZedTasks(path string) ([]zedTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read zed tasks file %s: %w", path, err)
	}

	var tasks []zedTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse zed tasks file %s: %w", path, err)
	}
	return tasks, nil
}

func writeZedTasks(path string, tasks []zedTask) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create zed config dir: %w", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize zed tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write zed tasks file %s: %w", path, err)
	}
	return nil
}

func mergeZedTasks(existing, managed []zedTask) []zedTask {
	return append(removeManagedZedTasks(existing), managed...)
}

func removeManagedZedTasks(tasks []zedTask) []zedTask {
	return slices.DeleteFunc(slices.Clone(tasks), zedTask.managed)
}

func zedTerminalTask(label, dir string) zedTask {
	return zedTask{
		"label":            rawJSON(label),
		"command":          rawJSON("pbk"),
		"args":             rawJSON([]string{"--path", dir}),
		"cwd":              rawJSON("$ZED_WORKTREE_ROOT"),
		"use_new_terminal": rawJSON(true),
		"reveal":           rawJSON("always"),
		"hide":             rawJSON("on_success"),
		"shell":            rawJSON("system"),
	}
}

// rawJSON encodes strings, bools and string slices, none of which can fail.
func rawJSON(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func defaultZedTasks() []zedTask {
	return []zedTask{
		zedTerminalTask("pbk: open (current worktree)", "$ZED_WORKTREE_ROOT"),
		zedTerminalTask("pbk: open (current file directory)", "$ZED_DIRNAME"),
	}
}
