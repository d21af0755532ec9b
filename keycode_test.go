package main

import "testing"

func TestLookupKey(t *testing.T) {
	tests := []struct {
		command string
		want    Key
	}{
		{"playpause", KeyPlay},
		{"play", KeyPlay},
		{"pause", KeyPlay},
		{"next", KeyNext},
		{"prev", KeyPrevious},
		{"previous", KeyPrevious},
		{"volup", KeyVolumeUp},
		{"voldown", KeyVolumeDown},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got, ok := lookupKey(tt.command)
			if !ok {
				t.Fatalf("lookupKey(%q) not found", tt.command)
			}
			if got != tt.want {
				t.Errorf("lookupKey(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestLookupKeyRejectsControlAndUnknown(t *testing.T) {
	for _, command := range []string{"enable", "disable", "status", "tray", "autostart", "", "PLAY", "stop", "mute"} {
		if k, ok := lookupKey(command); ok {
			t.Errorf("lookupKey(%q) = %v, want not found", command, k)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyUnknown.String() != "unknown" {
		t.Errorf("KeyUnknown.String() = %q", KeyUnknown.String())
	}
	if KeyVolumeDown.String() != "volume_down" {
		t.Errorf("KeyVolumeDown.String() = %q", KeyVolumeDown.String())
	}
	if KeyDown.String() != "down" || KeyUp.String() != "up" {
		t.Errorf("KeyEventType strings = %q/%q", KeyDown, KeyUp)
	}
}
