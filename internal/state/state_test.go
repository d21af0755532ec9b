package state

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), DefaultFileName))
}

func TestEnabledMissingFile(t *testing.T) {
	s := newTestStore(t)
	if s.Enabled() {
		t.Error("Enabled() = true for missing file, want false")
	}
}

func TestSetEnabledRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetEnabled(true); err != nil {
		t.Fatalf("SetEnabled(true) error = %v", err)
	}
	if !s.Enabled() {
		t.Error("Enabled() = false after SetEnabled(true)")
	}

	if err := s.SetEnabled(false); err != nil {
		t.Fatalf("SetEnabled(false) error = %v", err)
	}
	if s.Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}
}

func TestSetEnabledIdempotent(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := s.SetEnabled(true); err != nil {
			t.Fatalf("SetEnabled(true) #%d error = %v", i, err)
		}
	}
	if !s.Enabled() {
		t.Error("Enabled() = false after repeated SetEnabled(true)")
	}
}

func TestSetEnabledFileContent(t *testing.T) {
	tests := []struct {
		enabled bool
		want    string
	}{
		{true, "1"},
		{false, "0"},
	}

	for _, tt := range tests {
		s := newTestStore(t)
		if err := s.SetEnabled(tt.enabled); err != nil {
			t.Fatalf("SetEnabled(%v) error = %v", tt.enabled, err)
		}
		data, err := os.ReadFile(s.Path())
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != tt.want {
			t.Errorf("file content = %q, want %q", data, tt.want)
		}
	}
}

func TestEnabledContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"one", "1", true},
		{"one with newline", "1\n", true},
		{"padded", "  1 \t\n", true},
		{"zero", "0", false},
		{"empty", "", false},
		{"garbage", "yes", false},
		{"true literal", "true", false},
		{"eleven", "11", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := os.WriteFile(s.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			if got := s.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnabledUnreadable(t *testing.T) {
	// A directory at the flag path cannot be read as a file.
	dir := t.TempDir()
	s := NewStore(dir)
	if s.Enabled() {
		t.Error("Enabled() = true for unreadable path, want false")
	}
}

func TestSetEnabledMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", DefaultFileName))
	if err := s.SetEnabled(true); err == nil {
		t.Error("SetEnabled() error = nil for missing directory, want error")
	}
	if s.Enabled() {
		t.Error("Enabled() = true after failed write")
	}
}
