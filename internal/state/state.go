// Package state persists the mediakey enabled flag.
package state

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// DefaultFileName is the flag file created in the working directory.
const DefaultFileName = ".mediakey_enabled"

// Store reads and writes the enabled flag file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the flag file location.
func (s *Store) Path() string {
	return s.path
}

// Enabled reports whether the flag file holds "1".
// A missing or unreadable file counts as disabled.
func (s *Store) Enabled() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// SetEnabled replaces the flag file with "1" or "0".
func (s *Store) SetEnabled(enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	if err := atomic.WriteFile(s.path, strings.NewReader(value)); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	return nil
}
