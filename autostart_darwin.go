//go:build darwin

package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const launchAgentLabel = "com.kidandcat.mediakey"

// DarwinAutostart implements Autostart for macOS using LaunchAgent
type DarwinAutostart struct {
	exe    string
	getenv func(string) string
}

// NewAutostart creates a new autostart handler for macOS
func NewAutostart(exe string, getenv func(string) string) Autostart {
	return &DarwinAutostart{exe: exe, getenv: getenv}
}

func (a *DarwinAutostart) getLaunchAgentPath() string {
	home := a.getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, "Library", "LaunchAgents", launchAgentLabel+".plist")
}

// programArguments returns the launchd argv. Binaries inside a .app bundle are
// started through open(1) so the bundle gets its usual launch environment.
func (a *DarwinAutostart) programArguments() []string {
	// exe will be like /Applications/mediakey.app/Contents/MacOS/mediakey
	if idx := strings.Index(a.exe, ".app/"); idx != -1 {
		return []string{"/usr/bin/open", "-a", a.exe[:idx+4], "--args", trayCommand}
	}
	return []string{a.exe, trayCommand}
}

func (a *DarwinAutostart) IsEnabled() bool {
	_, err := os.Stat(a.getLaunchAgentPath())
	return err == nil
}

func (a *DarwinAutostart) Enable() error {
	var args strings.Builder
	for _, arg := range a.programArguments() {
		args.WriteString("        <string>")
		if err := xml.EscapeText(&args, []byte(arg)); err != nil {
			return err
		}
		args.WriteString("</string>\n")
	}

	plist := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
%s    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <false/>
</dict>
</plist>
`, launchAgentLabel, args.String())

	path := a.getLaunchAgentPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(plist), 0644)
}

func (a *DarwinAutostart) Disable() error {
	err := os.Remove(a.getLaunchAgentPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
