// Package session implements the level-progression engine. A Session owns
// the current position in the curriculum and judges one line of input at a
// time; the interactive and plain front-ends both drive this engine.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tuxtrain/tuxtrain/internal/check"
	"github.com/tuxtrain/tuxtrain/internal/level"
)

// Outcome classifies the result of judging one line of input.
type Outcome int

const (
	// OutcomeIncorrect means the answer did not match; the level repeats.
	OutcomeIncorrect Outcome = iota
	// OutcomeCorrect means the answer matched and the session advanced.
	OutcomeCorrect
	// OutcomeFinished means the answer matched the last level.
	OutcomeFinished
	// OutcomeHint means the user asked for the current level's hint.
	OutcomeHint
	// OutcomeQuit means the user asked to leave the session.
	OutcomeQuit
)

// StepResult carries everything a front-end needs to render one judgement.
type StepResult struct {
	Outcome Outcome
	Level   level.Level

	// Hint is set for OutcomeHint; empty when the level has none.
	Hint string

	// Demonstration output for correct answers whose command was executed.
	Stdout string
	Stderr string
	// ExecSkipped is true for correct answers that were not executed, either
	// because the command is outside the safe set or execution is disabled.
	ExecSkipped bool
}

// Executor runs a demonstration command and returns its captured output.
type Executor interface {
	Exec(ctx context.Context, command string) (stdout, stderr string, err error)
}

// Recorder receives the append-only attempt trail.
type Recorder interface {
	Attempt(level int, input string)
	Solved(level int, input string)
	Event(msg string)
}

// Options configure a Session. Checker defaults to check.New; Journal and
// Executor may be nil (no journaling, no demonstrations).
type Options struct {
	Checker  *check.Checker
	Journal  Recorder
	Executor Executor

	// IsSafe reports whether a base command may be executed as a
	// demonstration. Nil means nothing is executed.
	IsSafe func(base string) bool
}

// Session steps through the curriculum one judged input at a time. Not safe
// for concurrent use; both front-ends are single-threaded.
type Session struct {
	levels  []level.Level
	checker *check.Checker
	journal Recorder
	exec    Executor
	isSafe  func(string) bool

	index         int
	attempts      int // attempts on the current level
	totalAttempts int
	startedAt     time.Time
	finished      bool
	quit          bool
}

// New creates a session positioned at the first level. The levels slice must
// be non-empty and already ordered.
func New(levels []level.Level, opts Options) *Session {
	checker := opts.Checker
	if checker == nil {
		checker = check.New()
	}
	journal := opts.Journal
	if journal == nil {
		journal = nopRecorder{}
	}
	return &Session{
		levels:    levels,
		checker:   checker,
		journal:   journal,
		exec:      opts.Executor,
		isSafe:    opts.IsSafe,
		startedAt: time.Now(),
	}
}

// Current returns the level being played, and false once the session is over.
func (s *Session) Current() (level.Level, bool) {
	if s.Done() {
		return level.Level{}, false
	}
	return s.levels[s.index], true
}

// Index is the zero-based position of the current level.
func (s *Session) Index() int { return s.index }

// Total is the number of levels in the curriculum.
func (s *Session) Total() int { return len(s.levels) }

// Attempts is the number of inputs judged against the current level.
func (s *Session) Attempts() int { return s.attempts }

// Done reports whether the session ended, by completion or by quitting.
func (s *Session) Done() bool { return s.finished || s.quit }

// Finished reports whether every level was solved.
func (s *Session) Finished() bool { return s.finished }

// Step judges one line of input against the current level. Calling Step on a
// finished session returns OutcomeQuit.
func (s *Session) Step(ctx context.Context, input string) StepResult {
	current, ok := s.Current()
	if !ok {
		return StepResult{Outcome: OutcomeQuit}
	}

	input = strings.TrimSpace(input)
	s.journal.Attempt(current.Number, input)

	switch strings.ToLower(input) {
	case "exit", "quit":
		s.quit = true
		s.journal.Event("user exited the session")
		return StepResult{Outcome: OutcomeQuit, Level: current}
	case "hint":
		return StepResult{Outcome: OutcomeHint, Level: current, Hint: current.Hint}
	}

	s.attempts++
	s.totalAttempts++

	if !s.checker.Match(input, current.ExpectedCommand) {
		return StepResult{Outcome: OutcomeIncorrect, Level: current}
	}

	s.journal.Solved(current.Number, input)
	res := StepResult{Outcome: OutcomeCorrect, Level: current}
	res.Stdout, res.Stderr, res.ExecSkipped = s.demonstrate(ctx, input)

	s.index++
	s.attempts = 0
	if s.index >= len(s.levels) {
		s.finished = true
		s.journal.Event("completed all levels")
		res.Outcome = OutcomeFinished
	}
	return res
}

// demonstrate runs a correct answer when its base command is in the safe
// set. Execution failures are reported through stderr, never as session
// errors; a broken demonstration must not stop the training.
func (s *Session) demonstrate(ctx context.Context, input string) (stdout, stderr string, skipped bool) {
	if s.exec == nil || s.isSafe == nil || !s.isSafe(check.Base(check.Normalize(input))) {
		return "", "", true
	}
	stdout, stderr, err := s.exec.Exec(ctx, input)
	if err != nil && stderr == "" {
		stderr = err.Error()
	}
	return strings.TrimRight(stdout, "\n"), strings.TrimRight(stderr, "\n"), false
}

// Summary describes a completed or abandoned session.
type Summary struct {
	Solved        int
	Total         int
	TotalAttempts int
	StartedAt     time.Time
}

// Summary returns the session statistics so far.
func (s *Session) Summary() Summary {
	return Summary{
		Solved:        s.index,
		Total:         len(s.levels),
		TotalAttempts: s.totalAttempts,
		StartedAt:     s.startedAt,
	}
}

// Elapsed renders how long the session took, e.g. "5 minutes".
func (s Summary) Elapsed() string {
	if time.Since(s.StartedAt) < time.Second {
		return "under a second"
	}
	return strings.TrimSpace(humanize.RelTime(s.StartedAt, time.Now(), "", ""))
}

type nopRecorder struct{}

func (nopRecorder) Attempt(int, string) {}
func (nopRecorder) Solved(int, string)  {}
func (nopRecorder) Event(string)        {}
