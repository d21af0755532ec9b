//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LinuxAutostart implements Autostart for Linux using XDG autostart
type LinuxAutostart struct {
	exe    string
	getenv func(string) string
}

// NewAutostart creates a new autostart handler for Linux
func NewAutostart(exe string, getenv func(string) string) Autostart {
	return &LinuxAutostart{exe: exe, getenv: getenv}
}

func (a *LinuxAutostart) getAutostartDir() string {
	config := a.getenv("XDG_CONFIG_HOME")
	if config == "" {
		home := a.getenv("HOME")
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		config = filepath.Join(home, ".config")
	}
	return filepath.Join(config, "autostart")
}

func (a *LinuxAutostart) getDesktopFilePath() string {
	return filepath.Join(a.getAutostartDir(), "mediakey.desktop")
}

func (a *LinuxAutostart) IsEnabled() bool {
	_, err := os.Stat(a.getDesktopFilePath())
	return err == nil
}

func (a *LinuxAutostart) Enable() error {
	autostartDir := a.getAutostartDir()
	if err := os.MkdirAll(autostartDir, 0755); err != nil {
		return err
	}

	desktopEntry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=mediakey
Comment=Media key tray
Exec=%s %s
Icon=multimedia-player
Terminal=false
Categories=Utility;AudioVideo;
X-GNOME-Autostart-enabled=true
`, desktopExecQuote(a.exe), trayCommand)

	return os.WriteFile(a.getDesktopFilePath(), []byte(desktopEntry), 0644)
}

func (a *LinuxAutostart) Disable() error {
	err := os.Remove(a.getDesktopFilePath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// desktopExecQuote quotes a path for the Exec key of a desktop entry.
func desktopExecQuote(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\$`") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}
