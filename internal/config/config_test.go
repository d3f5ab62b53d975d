package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "pbk")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.SortFiles)
	assert.True(t, cfg.IgnoreComments)
	assert.True(t, cfg.CopyToClipboard)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.PrintOnExit)
	assert.Equal(t, 300*time.Millisecond, cfg.WatchDebounce)
	assert.Equal(t, 2*time.Second, cfg.CacheTTL)
	assert.Equal(t, "ctrl+e", cfg.BindEdit)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"sort_files: false\nbind_reload: Ctrl l\nwatch_debounce: 1s\n"), 0o644))
	t.Setenv("PBK_EDITOR", "nano")

	fs := pflag.NewFlagSet("pbk", pflag.ContinueOnError)
	fs.Bool("print", false, "")
	require.NoError(t, fs.Parse([]string{"--print"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.False(t, cfg.SortFiles)
	assert.Equal(t, "Ctrl l", cfg.BindReload)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
	assert.Equal(t, "nano", cfg.Editor)
	assert.True(t, cfg.PrintOnExit)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(
		"ignore_comments = false\nbind_edit = \"alt+o\"\n"), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IgnoreComments)
	assert.Equal(t, "alt+o", cfg.BindEdit)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("sort_files: [\n"), 0o644))

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestEditorCommand(t *testing.T) {
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", (&Config{}).EditorCommand())

	t.Setenv("EDITOR", "hx")
	assert.Equal(t, "hx", (&Config{}).EditorCommand())
	assert.Equal(t, "code -w", (&Config{Editor: "code -w"}).EditorCommand())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ctrl+e", "ctrl+e", false},
		{"Ctrl e", "ctrl+e", false},
		{"Alt X", "alt+x", false},
		{"  ctrl+r ", "ctrl+r", false},
		{"ctrl", "", true},
		{"Ctrl", "", true},
		{"Super e", "", true},
		{"Ctrl ee", "", true},
		{"Ctrl e f", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKeybinding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeybindings(t *testing.T) {
	cfg := &Config{BindEdit: "Ctrl o", BindReload: "ctrl+l"}
	kb, err := cfg.Keybindings()
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl+o"}, kb.Edit.Keys())
	assert.Equal(t, []string{"ctrl+l"}, kb.Reload.Keys())
	assert.Equal(t, []string{"ctrl+t"}, kb.SwitchFilterID.Keys())
}

func TestKeybindings_InvalidFallsBackToDefaults(t *testing.T) {
	cfg := &Config{BindEdit: "Ctrl o", BindSwitchFilterID: "bogus"}
	kb, err := cfg.Keybindings()
	assert.ErrorIs(t, err, ErrInvalidKeybinding)
	assert.Contains(t, err.Error(), "bind_switch_filter_id")
	assert.Equal(t, DefaultKeybindings().Edit.Keys(), kb.Edit.Keys())
}
