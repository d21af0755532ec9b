//go:build windows

package main

import (
	"fmt"
	"syscall"
)

var (
	user32         = syscall.NewLazyDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

const (
	KEYEVENTF_EXTENDEDKEY = 0x0001
	KEYEVENTF_KEYUP       = 0x0002
)

// Windows virtual key codes for media keys
const (
	VK_VOLUME_DOWN      = 0xAE
	VK_VOLUME_UP        = 0xAF
	VK_MEDIA_NEXT_TRACK = 0xB0
	VK_MEDIA_PREV_TRACK = 0xB1
	VK_MEDIA_PLAY_PAUSE = 0xB3
)

// WindowsKeyPoster implements KeyPoster for Windows via keybd_event
type WindowsKeyPoster struct{}

func newNativePoster() (KeyPoster, error) {
	if err := procKeybdEvent.Find(); err != nil {
		return nil, fmt.Errorf("failed to load keybd_event: %w", err)
	}
	return &WindowsKeyPoster{}, nil
}

func (p *WindowsKeyPoster) Post(key Key, event KeyEventType) error {
	vk, ok := translateVirtualKey(key)
	if !ok {
		return fmt.Errorf("windows: unsupported key %s", key)
	}

	flags := uintptr(KEYEVENTF_EXTENDEDKEY)
	if event == KeyUp {
		flags |= KEYEVENTF_KEYUP
	}
	// keybd_event returns void; there is nothing to check.
	procKeybdEvent.Call(uintptr(vk), 0, flags, 0)
	return nil
}

func (p *WindowsKeyPoster) Close() error {
	return nil
}

// translateVirtualKey converts a unified Key to a Windows virtual key code
func translateVirtualKey(key Key) (uint8, bool) {
	switch key {
	case KeyPlay:
		return VK_MEDIA_PLAY_PAUSE, true
	case KeyNext:
		return VK_MEDIA_NEXT_TRACK, true
	case KeyPrevious:
		return VK_MEDIA_PREV_TRACK, true
	case KeyVolumeUp:
		return VK_VOLUME_UP, true
	case KeyVolumeDown:
		return VK_VOLUME_DOWN, true
	default:
		return 0, false
	}
}
