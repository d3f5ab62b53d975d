package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// SortFiles lists playbooks in lexical order instead of directory order.
	SortFiles bool `mapstructure:"sort_files"`
	// IgnoreComments drops lines starting with '#' from playbooks.
	IgnoreComments bool `mapstructure:"ignore_comments"`
	// Editor used to open playbooks (falls back to $EDITOR, then vi).
	Editor string `mapstructure:"editor"`
	// PrintOnExit prints the picked line to stdout and quits.
	PrintOnExit bool `mapstructure:"print_on_exit"`
	// CopyToClipboard copies the picked line to the system clipboard.
	CopyToClipboard bool `mapstructure:"copy_to_clipboard"`
	// Watch reloads the lists when the directory or playbook changes.
	Watch bool `mapstructure:"watch"`
	// WatchDebounce coalesces bursts of filesystem events.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	// CacheTTL bounds how long a directory listing or playbook is reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	BindEdit           string `mapstructure:"bind_edit"`
	BindReload         string `mapstructure:"bind_reload"`
	BindSwitchFilterID string `mapstructure:"bind_switch_filter_id"`
}

// Load reads configuration from ~/.config/pbk/config.yaml (or .toml/.json,
// decoded by extension).
// Flags in fs, when given, override file and environment values.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")

	v.AddConfigPath(configDirectory())
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("PBK")
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EditorCommand returns the editor to launch.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sort_files", true)
	v.SetDefault("ignore_comments", true)
	v.SetDefault("editor", "")
	v.SetDefault("print_on_exit", false)
	v.SetDefault("copy_to_clipboard", true)
	v.SetDefault("watch", true)
	v.SetDefault("watch_debounce", 300*time.Millisecond)
	v.SetDefault("cache_ttl", 2*time.Second)

	d := DefaultKeybindings()
	v.SetDefault("bind_edit", d.Edit.Keys()[0])
	v.SetDefault("bind_reload", d.Reload.Keys()[0])
	v.SetDefault("bind_switch_filter_id", d.SwitchFilterID.Keys()[0])
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"sort":            "sort_files",
	"ignore-comments": "ignore_comments",
	"print":           "print_on_exit",
	"editor":          "editor",
	"watch":           "watch",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pbk")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pbk")
}
