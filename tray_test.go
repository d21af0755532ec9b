package main

import "testing"

func TestTrayLabels(t *testing.T) {
	title, status := trayLabels(true)
	if title != "⏯" || status != "● Enabled" {
		t.Errorf("trayLabels(true) = %q, %q", title, status)
	}

	title, status = trayLabels(false)
	if title != "⏹" || status != "○ Disabled" {
		t.Errorf("trayLabels(false) = %q, %q", title, status)
	}
}
