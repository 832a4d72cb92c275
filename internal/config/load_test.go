package config

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReader(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(`{
		"options": {"levels_directory": "lv", "debug": true},
		"extra_safe_commands": ["uptime"]
	}`))
	require.NoError(t, err)
	require.Equal(t, "lv", cfg.Options.LevelsDirectory)
	require.True(t, cfg.Options.Debug)
	require.Equal(t, []string{"uptime"}, cfg.ExtraSafeCommands)
}

func TestLoadReaderInvalid(t *testing.T) {
	_, err := LoadReader(strings.NewReader(`{not json`))
	require.Error(t, err)
}

func TestLoadFromReadersMergesInOrder(t *testing.T) {
	global := strings.NewReader(`{"options": {"levels_directory": "global", "debug": true}}`)
	local := strings.NewReader(`{"options": {"levels_directory": "local"}}`)

	cfg, err := loadFromReaders([]io.Reader{global, local})
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Options.LevelsDirectory, "later readers win")
	require.True(t, cfg.Options.Debug, "untouched settings survive the merge")
}

func TestLoadFromNoReaders(t *testing.T) {
	cfg, err := loadFromReaders(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.False(t, cfg.Options.Debug)
}
