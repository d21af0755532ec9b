package main

import "github.com/gen2brain/beeep"

// Notifier shows a desktop notification
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier implements Notifier with the platform notification centre
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// nopNotifier drops every notification
type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }
