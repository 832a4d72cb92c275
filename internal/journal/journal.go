// Package journal records every attempt of a training session to an
// append-only text file, one line per event. The file is meant for humans
// (students or instructors reviewing a session), not for the program.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Journal appends session events to a flat file. Safe for concurrent use.
type Journal struct {
	mu        sync.Mutex
	file      *os.File
	sessionID string
}

// Open creates the journal file (and its directory) if needed and appends a
// session-start marker.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := &Journal{
		file:      file,
		sessionID: uuid.NewString(),
	}
	j.Event("session started")
	return j, nil
}

// SessionID returns the identifier stamped on every line of this session.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Attempt records a single input for a level.
func (j *Journal) Attempt(level int, input string) {
	j.write(fmt.Sprintf("level=%d input=%q", level, input))
}

// Solved records a correct answer for a level.
func (j *Journal) Solved(level int, input string) {
	j.write(fmt.Sprintf("level=%d solved=%q", level, input))
}

// Event records a free-form session event.
func (j *Journal) Event(msg string) {
	j.write(msg)
}

// Close appends the session-end marker and closes the file.
func (j *Journal) Close() error {
	j.Event("session ended")

	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

func (j *Journal) write(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.file, "%s %s %s\n", time.Now().Format(time.RFC3339), j.sessionID, msg)
}
