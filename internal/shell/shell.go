// Package shell executes demonstration commands through a POSIX shell
// interpreter (mvdan.cc/sh) with captured output. Commands run in-process
// where a coreutil implementation exists, so demonstrations work even on
// systems without the corresponding binaries.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// BlockFunc decides whether a command invocation should be refused.
type BlockFunc func(args []string) bool

// Shell runs commands with captured stdout/stderr and a stable working
// directory and environment between invocations.
type Shell struct {
	env        []string
	cwd        string
	mu         sync.Mutex
	blockFuncs []BlockFunc
}

// Options for creating a new shell.
type Options struct {
	WorkingDir string
	Env        []string
	BlockFuncs []BlockFunc
}

// NewShell creates a new shell instance with the given options.
func NewShell(opts *Options) *Shell {
	if opts == nil {
		opts = &Options{}
	}

	cwd := opts.WorkingDir
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	return &Shell{
		cwd:        cwd,
		env:        env,
		blockFuncs: opts.BlockFuncs,
	}
}

// Exec executes a command line and returns its captured stdout and stderr.
func (s *Shell) Exec(ctx context.Context, command string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return "", "", fmt.Errorf("could not parse command: %w", err)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.StdIO(nil, &stdout, &stderr),
		interp.Interactive(false),
		interp.Env(expand.ListEnviron(s.env...)),
		interp.Dir(s.cwd),
		interp.ExecHandlers(s.blockHandler(), s.coreUtilsHandler()),
	)
	if err != nil {
		return "", "", fmt.Errorf("could not run command: %w", err)
	}

	err = runner.Run(ctx, line)
	s.cwd = runner.Dir
	s.env = []string{}
	for name, vr := range runner.Vars {
		s.env = append(s.env, fmt.Sprintf("%s=%s", name, vr.Str))
	}
	slog.Debug("Command finished", "command", command, "err", err)
	return stdout.String(), stderr.String(), err
}

// GetWorkingDir returns the current working directory.
func (s *Shell) GetWorkingDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

// SetWorkingDir sets the working directory.
func (s *Shell) SetWorkingDir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}

	s.cwd = dir
	return nil
}

// AllowCommandsOnly creates a BlockFunc that refuses every command whose
// name is not in the allowed set.
func AllowCommandsOnly(allowed []string) BlockFunc {
	allowedSet := make(map[string]bool, len(allowed))
	for _, cmd := range allowed {
		allowedSet[cmd] = true
	}

	return func(args []string) bool {
		if len(args) == 0 {
			return false
		}
		return !allowedSet[args[0]]
	}
}

// CommandsBlocker creates a BlockFunc that blocks exact command matches.
func CommandsBlocker(bannedCommands []string) BlockFunc {
	bannedSet := make(map[string]bool, len(bannedCommands))
	for _, cmd := range bannedCommands {
		bannedSet[cmd] = true
	}

	return func(args []string) bool {
		if len(args) == 0 {
			return false
		}
		return bannedSet[args[0]]
	}
}

func (s *Shell) blockHandler() func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}

			for _, blockFunc := range s.blockFuncs {
				if blockFunc(args) {
					return fmt.Errorf("command is not allowed for safety reasons: %s", strings.Join(args, " "))
				}
			}

			return next(ctx, args)
		}
	}
}

// IsInterrupt checks if an error is due to interruption.
func IsInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// ExitCode extracts the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	status, ok := interp.IsExitStatus(err)
	if ok {
		return int(status)
	}
	return 1
}
