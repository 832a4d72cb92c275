package check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "ls -l", Normalize("  ls   -l  "))
	require.Equal(t, "", Normalize("   "))
	require.Equal(t, "echo hello", Normalize("echo\thello"))
}

func TestBase(t *testing.T) {
	require.Equal(t, "ls", Base("ls -la /tmp"))
	require.Equal(t, "", Base(""))
	require.Equal(t, "", Base("   "))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		want     bool
	}{
		{"exact", "pwd", "pwd", true},
		{"exact with args", "echo hello", "echo hello", true},
		{"whitespace normalized", "  echo   hello ", "echo hello", true},
		{"wrong command", "ls", "pwd", false},
		{"case sensitive", "PWD", "pwd", false},
		{"empty input", "", "pwd", false},
		{"empty expected", "pwd", "", false},
		{"ls with flags", "ls -la", "ls", true},
		{"ls with path", "ls .", "ls", true},
		{"ls expected with args is strict", "ls", "ls -l", false},
		{"history with count", "history 5", "history", true},
		{"history exact", "history", "history", true},
		{"vi for nano", "vi notes.txt", "nano notes.txt", true},
		{"nano exact", "nano notes.txt", "nano notes.txt", true},
		{"vi wrong file", "vi other.txt", "nano notes.txt", false},
		{"vi missing file", "vi", "nano notes.txt", false},
		{"emacs not accepted", "emacs notes.txt", "nano notes.txt", false},
	}

	checker := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, checker.Match(tt.input, tt.expected))
		})
	}
}
