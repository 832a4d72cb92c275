package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJournalWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "commands.log")

	j, err := Open(path)
	require.NoError(t, err)
	require.NotEmpty(t, j.SessionID())

	j.Attempt(1, "ls -l")
	j.Solved(1, "pwd")
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "session started")
	require.Contains(t, content, `level=1 input="ls -l"`)
	require.Contains(t, content, `level=1 solved="pwd"`)
	require.Contains(t, content, "session ended")

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		require.Contains(t, line, j.SessionID(), "every line carries the session id")
	}
}

func TestJournalAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.log")

	first, err := Open(path)
	require.NoError(t, err)
	first.Attempt(1, "pwd")
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	second.Attempt(2, "ls")
	require.NoError(t, second.Close())

	require.NotEqual(t, first.SessionID(), second.SessionID())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, first.SessionID())
	require.Contains(t, content, second.SessionID())
	require.Equal(t, 2, strings.Count(content, "session started"))
}
