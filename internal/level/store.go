package level

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed levels/*.json
var builtin embed.FS

// ErrNoLevels is returned when loading yields an empty curriculum.
var ErrNoLevels = fmt.Errorf("no levels loaded")

// Load returns the curriculum: the built-in levels, with records from dir
// (when non-empty) layered on top. A user level that reuses a built-in
// number replaces it. Unreadable or malformed files are logged and skipped
// so one bad file does not take down the whole session.
func Load(dir string) ([]Level, error) {
	levels, err := loadFS(builtin, "levels")
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in levels: %w", err)
	}
	levels = dedupe(levels)

	if dir != "" {
		extra, err := loadFS(os.DirFS(dir), ".")
		if err != nil {
			return nil, fmt.Errorf("failed to load levels from %s: %w", dir, err)
		}
		// Deduplicate within the directory first so the first record wins
		// there too, then layer the survivors over the built-ins.
		levels = merge(levels, dedupe(extra))
	}

	slices.SortFunc(levels, func(a, b Level) int { return a.Number - b.Number })

	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return levels, nil
}

func loadFS(fsys fs.FS, root string) ([]Level, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		name := filepath.Join(root, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			slog.Warn("Skipping unreadable level file", "file", entry.Name(), "error", err)
			continue
		}
		var lvl Level
		if err := json.Unmarshal(data, &lvl); err != nil {
			slog.Warn("Skipping malformed level file", "file", entry.Name(), "error", err)
			continue
		}
		if err := lvl.Validate(); err != nil {
			slog.Warn("Skipping invalid level", "file", entry.Name(), "error", err)
			continue
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// merge layers extra on top of base, replacing base levels that share a
// number.
func merge(base, extra []Level) []Level {
	byNumber := make(map[int]int, len(base))
	for i, lvl := range base {
		byNumber[lvl.Number] = i
	}
	for _, lvl := range extra {
		if i, ok := byNumber[lvl.Number]; ok {
			base[i] = lvl
			continue
		}
		byNumber[lvl.Number] = len(base)
		base = append(base, lvl)
	}
	return base
}

// dedupe keeps the first occurrence of each number. Presenting the same
// ordinal twice is a curriculum defect, not a feature.
func dedupe(levels []Level) []Level {
	seen := make(map[int]bool, len(levels))
	out := levels[:0]
	for _, lvl := range levels {
		if seen[lvl.Number] {
			slog.Warn("Dropping duplicate level", "number", lvl.Number, "title", lvl.Title)
			continue
		}
		seen[lvl.Number] = true
		out = append(out, lvl)
	}
	return out
}
