//go:build windows

package main

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath   = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueName = "mediakey"
)

// WindowsAutostart implements Autostart for Windows using Registry
type WindowsAutostart struct {
	exe string
}

// NewAutostart creates a new autostart handler for Windows
func NewAutostart(exe string, _ func(string) string) Autostart {
	return &WindowsAutostart{exe: exe}
}

func (a *WindowsAutostart) IsEnabled() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	_, _, err = k.GetStringValue(runValueName)
	return err == nil
}

func (a *WindowsAutostart) Enable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	return k.SetStringValue(runValueName, `"`+a.exe+`" `+trayCommand)
}

func (a *WindowsAutostart) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.DeleteValue(runValueName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return err
	}
	return nil
}
