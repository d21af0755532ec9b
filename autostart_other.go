//go:build !darwin && !linux && !windows

package main

import "errors"

type unsupportedAutostart struct{}

// NewAutostart returns an Autostart that reports autostart as unavailable
func NewAutostart(string, func(string) string) Autostart {
	return unsupportedAutostart{}
}

func (unsupportedAutostart) IsEnabled() bool { return false }

func (unsupportedAutostart) Enable() error {
	return errors.New("autostart is not supported on this platform")
}

func (unsupportedAutostart) Disable() error { return nil }
