package kconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNotFound indicates the configuration snapshot file does not exist.
var ErrNotFound = errors.New("configuration snapshot not found")

// ErrNotConfigured indicates an operation that refines an existing
// configuration was requested before the project was configured at all.
var ErrNotConfigured = errors.New("project not configured")

// Snapshot is a loaded board configuration (.config) file. It is read-only
// for the duration of one resolution; mutations go through the external
// kconfig-tweak tool and require reloading.
//
// Matching is substring-based over the raw snapshot text. This is a coarse
// heuristic kept for compatibility with the existing rule tables: it does
// not verify that a predicate sits on its own line or is correctly scoped.
type Snapshot struct {
	path string
	raw  string
}

// Load reads the snapshot at path. It returns ErrNotFound (wrapped with the
// path) when the file does not exist.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read configuration snapshot %s: %w", path, err)
	}
	return &Snapshot{path: path, raw: string(data)}, nil
}

// Path returns the file the snapshot was loaded from.
func (s *Snapshot) Path() string {
	return s.path
}

// Has reports whether the literal setting string appears anywhere in the
// snapshot text. Boolean predicates carry their own "=y" suffix.
func (s *Snapshot) Has(setting string) bool {
	return strings.Contains(s.raw, setting)
}

// MatchesAll reports whether every predicate appears verbatim in the
// snapshot. An empty predicate list matches trivially.
func (s *Snapshot) MatchesAll(predicates []string) bool {
	for _, p := range predicates {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// Value scans line by line for the first "key=" assignment and returns the
// text after the first '='. The second return is false when the key has no
// explicit assignment line.
func (s *Snapshot) Value(key string) (string, bool) {
	prefix := key + "="
	for _, line := range strings.Split(s.raw, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix), true
		}
	}
	return "", false
}
