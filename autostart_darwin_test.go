//go:build darwin

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDarwinAutostart(t *testing.T) {
	home := t.TempDir()
	env := map[string]string{"HOME": home}
	a := NewAutostart("/usr/local/bin/mediakey", func(k string) string { return env[k] })

	if err := a.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if !a.IsEnabled() {
		t.Error("IsEnabled() = false after Enable")
	}

	data, err := os.ReadFile(filepath.Join(home, "Library", "LaunchAgents", launchAgentLabel+".plist"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{"<string>/usr/local/bin/mediakey</string>", "<string>tray</string>"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("plist missing %s:\n%s", want, data)
		}
	}

	if err := a.Disable(); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if a.IsEnabled() {
		t.Error("IsEnabled() = true after Disable")
	}
}

func TestDarwinAutostartAppBundle(t *testing.T) {
	a := &DarwinAutostart{exe: "/Applications/mediakey.app/Contents/MacOS/mediakey"}
	got := strings.Join(a.programArguments(), " ")
	want := "/usr/bin/open -a /Applications/mediakey.app --args tray"
	if got != want {
		t.Errorf("programArguments() = %q, want %q", got, want)
	}
}
