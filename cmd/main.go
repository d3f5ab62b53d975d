package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/Akashdeep-Patra/playbooks/internal/app"
	"github.com/Akashdeep-Patra/playbooks/internal/common"
	"github.com/Akashdeep-Patra/playbooks/internal/config"
	"github.com/Akashdeep-Patra/playbooks/internal/output"
	"github.com/Akashdeep-Patra/playbooks/internal/source"
	"github.com/Akashdeep-Patra/playbooks/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// pbk is mostly idle waiting for keys; a couple of OS threads is plenty
	// and keeps many open panes cheap. An explicit GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pbk:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pbk [dir]",
		Short: "Pick a command from your playbooks",
		Long: `pbk is a keyboard-first terminal picker for playbooks: plain text
files whose lines are commands or snippets you run often.

Pick a file from the directory, then pick a line from it. The line is
copied to the clipboard, or printed on exit with --print so a shell
widget can insert it.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pbk %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildZedCmd())

	f := rootCmd.Flags()
	f.StringP("path", "p", ".", "Directory holding the playbooks")
	f.Bool("sort", true, "List playbooks in lexical order")
	f.Bool("ignore-comments", true, "Skip lines starting with #")
	f.Bool("print", false, "Print the picked line to stdout and exit")
	f.Bool("watch", true, "Reload when the directory changes")
	f.String("editor", "", "Editor used to open playbooks (default $EDITOR)")
	f.String("log", "", "Write debug logs to this file (or set PBK_LOG)")

	return rootCmd
}

// buildVersionCmd creates the `pbk version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "pbk %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `pbk completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pbk.

Examples:
  # Bash (add to ~/.bashrc)
  pbk completion bash > /etc/bash_completion.d/pbk

  # Zsh (add to ~/.zshrc before compinit)
  pbk completion zsh > "${fpath[1]}/_pbk"

  # Fish
  pbk completion fish > ~/.config/fish/completions/pbk.fish

  # PowerShell
  pbk completion powershell > pbk.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

// setupLogging sends the log package to path, or discards it so nothing
// is written over the TUI. The returned closer is never nil.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "pbk")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("path")
	if len(args) == 1 {
		dir = args[0]
	}

	logPath, _ := cmd.Flags().GetString("log")
	if logPath == "" {
		logPath = os.Getenv("PBK_LOG")
	}
	logFile, err := setupLogging(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fsSvc, err := source.NewFSService(dir)
	if err != nil {
		return fmt.Errorf("opening playbooks: %w", err)
	}
	src := source.NewCachedService(fsSvc, cfg.CacheTTL)
	log.Printf("pbk %s: root=%s", version, src.Root())

	collector := &output.Collector{}
	sinks := output.Multi{collector}
	if cfg.CopyToClipboard {
		sinks = append(sinks, output.NewClipboard())
	}

	model := app.New(src, cfg, sinks, app.NewViews(src, cfg))

	var watchCh <-chan watcher.Event
	if cfg.Watch {
		ch, stop, werr := watcher.Watch(src.Root(), cfg.WatchDebounce)
		if werr != nil {
			log.Printf("watch disabled: %v", werr)
		} else {
			defer stop()
			watchCh = ch
			model.SetWatching(true)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if watchCh != nil {
		go func() {
			for range watchCh {
				p.Send(common.RefreshMsg{})
			}
		}()
	}
	return runProgram(p, cfg, collector)
}

// runProgram runs the TUI and prints the picked line once the terminal is
// restored.
func runProgram(p *tea.Program, cfg *config.Config, collector *output.Collector) error {
	if _, err := p.Run(); err != nil {
		return err
	}
	if cfg.PrintOnExit {
		if _, err := collector.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("print picked line: %w", err)
		}
	}
	return nil
}
