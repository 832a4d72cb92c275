package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/tuxtrain/tuxtrain/internal/config"
	"github.com/tuxtrain/tuxtrain/internal/journal"
	"github.com/tuxtrain/tuxtrain/internal/level"
	"github.com/tuxtrain/tuxtrain/internal/session"
	"github.com/tuxtrain/tuxtrain/internal/shell"
	"github.com/tuxtrain/tuxtrain/internal/trainer"
	"github.com/tuxtrain/tuxtrain/internal/tui"
	"github.com/tuxtrain/tuxtrain/internal/version"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().StringP("levels", "l", "", "Directory with extra level files")

	rootCmd.Flags().BoolP("help", "h", false, "Help")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tuxtrain",
	Short: "Interactive tutorial for Linux shell commands",
	Long: `Tuxtrain teaches beginners the Linux command line through a sequence of
short exercises. Each level describes a task; type the command that solves
it to advance. Type 'hint' for help and 'exit' or 'quit' to leave.`,
	Example: `
# Start the interactive trainer
tuxtrain

# Start with debug logging
tuxtrain -d

# Use your own level files on top of the built-in curriculum
tuxtrain -l ./my-levels

# Play without a TTY (same loop, plain output)
tuxtrain run
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup, err := setupSession(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		// No terminal on stdin means the TUI cannot run; fall back to the
		// plain line-oriented loop so piped input still works.
		if !term.IsTerminal(os.Stdin.Fd()) {
			return trainer.New(sess, os.Stdin, os.Stdout).Run(cmd.Context())
		}

		program := tea.NewProgram(
			tui.New(cmd.Context(), sess),
			tea.WithContext(cmd.Context()),
		)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// setupSession handles the common setup for the interactive and plain
// modes: config, curriculum, journal, and the demonstration shell.
func setupSession(cmd *cobra.Command) (*session.Session, func(), error) {
	cfg, levels, err := loadConfigAndLevels(cmd)
	if err != nil {
		return nil, nil, err
	}

	jrnl, err := journal.Open(cfg.JournalPath())
	if err != nil {
		return nil, nil, err
	}

	opts := session.Options{Journal: jrnl}
	if !cfg.Options.DisableExec {
		opts.Executor = shell.NewShell(&shell.Options{
			BlockFuncs: []shell.BlockFunc{shell.AllowCommandsOnly(cfg.SafeCommands())},
		})
		opts.IsSafe = cfg.IsSafe
	}

	sess := session.New(levels, opts)
	cleanup := func() {
		if err := jrnl.Close(); err != nil {
			slog.Error("Failed to close journal", "error", err)
		}
	}
	return sess, cleanup, nil
}

func loadConfigAndLevels(cmd *cobra.Command) (*config.Config, []level.Level, error) {
	debug, _ := cmd.Flags().GetBool("debug")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cwd, debug)
	if err != nil {
		return nil, nil, err
	}

	levelsDir, _ := cmd.Flags().GetString("levels")
	if levelsDir == "" {
		levelsDir = cfg.Options.LevelsDirectory
	}

	levels, err := level.Load(levelsDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, levels, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}
