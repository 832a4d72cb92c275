package trainer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuxtrain/tuxtrain/internal/level"
	"github.com/tuxtrain/tuxtrain/internal/session"
)

func testLevels() []level.Level {
	return []level.Level{
		{Number: 1, Title: "One", Description: "first task", ExpectedCommand: "pwd", Hint: "three letters"},
		{Number: 2, Title: "Two", Description: "second task", ExpectedCommand: "ls"},
	}
}

func runScript(t *testing.T, input string) string {
	t.Helper()
	sess := session.New(testLevels(), session.Options{})
	var out bytes.Buffer
	tr := New(sess, strings.NewReader(input), &out)
	require.NoError(t, tr.Run(t.Context()))
	return out.String()
}

func TestFullRun(t *testing.T) {
	out := runScript(t, "pwd\nls\n")

	require.Contains(t, out, "Welcome to tuxtrain!")
	require.Contains(t, out, "** Level 1: One **")
	require.Contains(t, out, "first task")
	require.Contains(t, out, "** Level 2: Two **")
	require.Contains(t, out, "Correct! Well done.")
	require.Contains(t, out, "Congratulations! You have completed all the levels!")
	require.Contains(t, out, "2 levels in 2 attempts, took under a second.")
}

func TestWrongAnswerRepeatsLevel(t *testing.T) {
	out := runScript(t, "whoami\npwd\nexit\n")

	require.Contains(t, out, "Oops, that's not the right command.")
	require.Contains(t, out, "** Level 2: Two **")
	require.Contains(t, out, "Exiting the trainer. Goodbye!")
	require.NotContains(t, out, "Congratulations")
}

func TestHint(t *testing.T) {
	out := runScript(t, "hint\nexit\n")
	require.Contains(t, out, "Hint: three letters")
}

func TestNoHintAvailable(t *testing.T) {
	out := runScript(t, "pwd\nhint\nexit\n")
	require.Contains(t, out, "No hint available for this level.")
}

func TestQuitWord(t *testing.T) {
	out := runScript(t, "quit\n")
	require.Contains(t, out, "Exiting the trainer. Goodbye!")
	require.NotContains(t, out, "** Level 2")
}

func TestEOFEndsSession(t *testing.T) {
	out := runScript(t, "pwd\n")
	require.Contains(t, out, "** Level 2: Two **")
	require.NotContains(t, out, "Congratulations")
}

func TestExecutionSkippedNotice(t *testing.T) {
	// No executor configured, so even correct answers are not run.
	out := runScript(t, "pwd\nexit\n")
	require.Contains(t, out, "(Command execution skipped for safety.)")
}

type echoExecutor struct{}

func (echoExecutor) Exec(_ context.Context, command string) (string, string, error) {
	return "ran: " + command, "", nil
}

func TestDemonstrationOutputPrinted(t *testing.T) {
	sess := session.New(testLevels(), session.Options{
		Executor: echoExecutor{},
		IsSafe:   func(string) bool { return true },
	})
	var out bytes.Buffer
	tr := New(sess, strings.NewReader("pwd\nexit\n"), &out)
	require.NoError(t, tr.Run(t.Context()))

	require.Contains(t, out.String(), "ran: pwd")
}
