// Package level defines the training curriculum: one Level record per
// exercise, loaded from JSON and ordered by number.
package level

import (
	"fmt"
	"strings"
)

// Level is a single training exercise. Levels are immutable once loaded and
// are presented in ascending Number order.
type Level struct {
	Number          int    `json:"number"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExpectedCommand string `json:"expected_command"`
	Hint            string `json:"hint,omitempty"`
}

// Validate reports whether the record is usable as an exercise.
func (l Level) Validate() error {
	if l.Number <= 0 {
		return fmt.Errorf("level %q: number must be positive, got %d", l.Title, l.Number)
	}
	if strings.TrimSpace(l.ExpectedCommand) == "" {
		return fmt.Errorf("level %d: missing expected command", l.Number)
	}
	if strings.TrimSpace(l.Description) == "" {
		return fmt.Errorf("level %d: missing description", l.Number)
	}
	return nil
}

// DisplayTitle returns the title, falling back to a generic one.
func (l Level) DisplayTitle() string {
	if l.Title != "" {
		return l.Title
	}
	return fmt.Sprintf("Level %d", l.Number)
}
