// Package artifact locates build output files across candidate directories.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError reports a missing build output along with every directory
// that was searched, so the user can self-diagnose.
type NotFoundError struct {
	Filename string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("artifact %s not found (searched: %s)",
		e.Filename, strings.Join(e.Searched, ", "))
}

// Locate searches the candidate directories in order and returns the first
// path containing filename. Order is significant: the primary project
// directory is checked before any generated build-output directory, so a
// manually placed artifact takes precedence. Pure query, no mutation.
func Locate(filename string, candidates ...string) (string, error) {
	for _, dir := range candidates {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &NotFoundError{Filename: filename, Searched: candidates}
}
