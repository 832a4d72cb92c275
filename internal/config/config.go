// Package config loads the trainer configuration from JSON files, merged in
// precedence order: global config, then project-local overrides.
package config

import (
	"os"
	"path/filepath"
	"slices"
)

const appName = "tuxtrain"

// defaultSafeCommands are the commands the trainer may execute to
// demonstrate their output after a correct answer. Anything else is shown
// but never run.
var defaultSafeCommands = []string{
	"pwd", "ls", "whoami", "echo", "clear", "date", "history",
}

// Options are the general settings.
type Options struct {
	// LevelsDirectory holds user-authored level files layered on top of the
	// built-in curriculum. Empty means built-ins only.
	LevelsDirectory string `json:"levels_directory,omitempty"`
	// DataDirectory holds logs and the attempt journal.
	DataDirectory string `json:"data_directory,omitempty"`
	// DisableExec turns off demonstration command execution entirely.
	DisableExec bool `json:"disable_exec,omitempty"`
	Debug       bool `json:"debug,omitempty"`
}

// Config is the merged application configuration.
type Config struct {
	Options Options `json:"options"`
	// ExtraSafeCommands extends the built-in safe-command set.
	ExtraSafeCommands []string `json:"extra_safe_commands,omitempty"`
}

func (c *Config) setDefaults(workingDir string) {
	if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = baseDataPath()
	}
	if c.Options.LevelsDirectory != "" && !filepath.IsAbs(c.Options.LevelsDirectory) {
		c.Options.LevelsDirectory = filepath.Join(workingDir, c.Options.LevelsDirectory)
	}
}

// SafeCommands returns the full executable-command allowlist.
func (c *Config) SafeCommands() []string {
	cmds := slices.Clone(defaultSafeCommands)
	for _, cmd := range c.ExtraSafeCommands {
		if !slices.Contains(cmds, cmd) {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// IsSafe reports whether base is an executable demonstration command.
func (c *Config) IsSafe(base string) bool {
	return base != "" && slices.Contains(c.SafeCommands(), base)
}

// JournalPath is the append-only attempt log reviewed by instructors.
func (c *Config) JournalPath() string {
	return filepath.Join(c.Options.DataDirectory, "logs", "commands.log")
}

// LogPath is the structured application log.
func (c *Config) LogPath() string {
	return filepath.Join(c.Options.DataDirectory, "logs", appName+".log")
}

func baseConfigPath() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName)
	}
	return filepath.Join(os.Getenv("HOME"), ".config", appName)
}

func baseDataPath() string {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName)
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", appName)
}
