package shell

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestEcho(t *testing.T) {
	shell := NewShell(&Options{WorkingDir: t.TempDir()})

	stdout, stderr, err := shell.Exec(t.Context(), "echo hello")
	if err != nil {
		t.Fatalf("Echo command failed: %v, stderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "hello") {
		t.Errorf("Echo output should contain 'hello', got: %q", stdout)
	}
}

func TestCoreUtils(t *testing.T) {
	dir := t.TempDir()
	shell := NewShell(&Options{WorkingDir: dir})

	if _, stderr, err := shell.Exec(t.Context(), "mkdir sub && touch sub/a.txt"); err != nil {
		t.Fatalf("mkdir/touch failed: %v, stderr: %s", err, stderr)
	}
	stdout, stderr, err := shell.Exec(t.Context(), "ls sub")
	if err != nil {
		t.Fatalf("ls failed: %v, stderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "a.txt") {
		t.Errorf("ls output should contain a.txt, got: %q", stdout)
	}
}

func TestTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), time.Millisecond)
	t.Cleanup(cancel)

	shell := NewShell(&Options{WorkingDir: t.TempDir()})
	_, _, err := shell.Exec(ctx, "sleep 10")
	if status := ExitCode(err); status == 0 {
		t.Fatalf("Expected non-zero exit status, got %d", status)
	}
	if !IsInterrupt(err) {
		t.Fatalf("Expected command to be interrupted, but it was not")
	}
}

func TestRunCommandError(t *testing.T) {
	shell := NewShell(&Options{WorkingDir: t.TempDir()})
	_, _, err := shell.Exec(t.Context(), "nopenopenope")
	if status := ExitCode(err); status == 0 {
		t.Fatalf("Expected non-zero exit status, got %d", status)
	}
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
}

func TestAllowCommandsOnly(t *testing.T) {
	shell := NewShell(&Options{
		WorkingDir: t.TempDir(),
		BlockFuncs: []BlockFunc{AllowCommandsOnly([]string{"echo"})},
	})

	if _, _, err := shell.Exec(t.Context(), "echo ok"); err != nil {
		t.Fatalf("Allowed command failed: %v", err)
	}

	_, _, err := shell.Exec(t.Context(), "ls")
	if err == nil {
		t.Fatalf("Expected blocked command to fail")
	}
	if !strings.Contains(err.Error(), "not allowed") {
		t.Fatalf("Expected a not-allowed error, got: %v", err)
	}
}

func TestCommandsBlocker(t *testing.T) {
	shell := NewShell(&Options{
		WorkingDir: t.TempDir(),
		BlockFuncs: []BlockFunc{CommandsBlocker([]string{"rm"})},
	})

	_, _, err := shell.Exec(t.Context(), "rm -rf something")
	if err == nil {
		t.Fatalf("Expected banned command to fail")
	}
}

func TestWorkingDirPersists(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()

	shell := NewShell(&Options{WorkingDir: dir1})
	if _, _, err := shell.Exec(t.Context(), "cd "+dir2); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	if got := shell.GetWorkingDir(); got != dir2 {
		t.Fatalf("expected working dir %q, got %q", dir2, got)
	}
}
