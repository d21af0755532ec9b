//go:build linux

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Linux evdev media key codes
const (
	linuxKeyVolumeDown   = 114
	linuxKeyVolumeUp     = 115
	linuxKeyNextSong     = 163
	linuxKeyPlayPause    = 164
	linuxKeyPreviousSong = 165
)

// evdev event types
const (
	EV_SYN = 0
	EV_KEY = 1

	SYN_REPORT = 0
)

// evdev key states
const (
	KEY_RELEASED = 0
	KEY_PRESSED  = 1
)

// uinput ioctls from linux/uinput.h
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565

	busVirtual = 0x06
)

const (
	uinputPath = "/dev/uinput"

	// inputEventSize is sizeof(struct input_event) on 64-bit kernels
	inputEventSize = 24

	// uinputSettle gives the compositor time to pick up the new device
	uinputSettle = 200 * time.Millisecond
)

// uinputUserDev mirrors struct uinput_user_dev
type uinputUserDev struct {
	Name         [80]byte
	Bustype      uint16
	Vendor       uint16
	Product      uint16
	Version      uint16
	FFEffectsMax uint32
	Absmax       [64]int32
	Absmin       [64]int32
	Absfuzz      [64]int32
	Absflat      [64]int32
}

// LinuxKeyPoster implements KeyPoster for Linux through a uinput virtual keyboard
type LinuxKeyPoster struct {
	device *os.File
}

func newNativePoster() (KeyPoster, error) {
	device, err := os.OpenFile(uinputPath, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w (try adding user to the 'input' group)", uinputPath, err)
	}

	if err := setupUinputDevice(device); err != nil {
		device.Close()
		return nil, err
	}
	time.Sleep(uinputSettle)

	return &LinuxKeyPoster{device: device}, nil
}

func setupUinputDevice(device *os.File) error {
	fd := int(device.Fd())

	if err := unix.IoctlSetInt(fd, uiSetEvBit, EV_KEY); err != nil {
		return fmt.Errorf("failed to enable EV_KEY on uinput device: %w", err)
	}
	for _, key := range []Key{KeyPlay, KeyNext, KeyPrevious, KeyVolumeUp, KeyVolumeDown} {
		code, _ := translateLinuxKeycode(key)
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, int(code)); err != nil {
			return fmt.Errorf("failed to enable key %s on uinput device: %w", key, err)
		}
	}

	var dev uinputUserDev
	copy(dev.Name[:], "mediakey")
	dev.Bustype = busVirtual
	dev.Vendor = 0x1
	dev.Product = 0x1
	dev.Version = 1

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, &dev); err != nil {
		return fmt.Errorf("failed to encode uinput device: %w", err)
	}
	if _, err := device.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write uinput device: %w", err)
	}

	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("failed to create uinput device: %w", err)
	}
	return nil
}

func (p *LinuxKeyPoster) Post(key Key, event KeyEventType) error {
	code, ok := translateLinuxKeycode(key)
	if !ok {
		return fmt.Errorf("linux: unsupported key %s", key)
	}

	value := int32(KEY_RELEASED)
	if event == KeyDown {
		value = KEY_PRESSED
	}

	buf := make([]byte, 0, 2*inputEventSize)
	buf = append(buf, encodeInputEvent(EV_KEY, code, value)...)
	buf = append(buf, encodeInputEvent(EV_SYN, SYN_REPORT, 0)...)
	if _, err := p.device.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s %s event: %w", key, event, err)
	}
	return nil
}

func (p *LinuxKeyPoster) Close() error {
	if p.device == nil {
		return nil
	}
	_ = unix.IoctlSetInt(int(p.device.Fd()), uiDevDestroy, 0)
	err := p.device.Close()
	p.device = nil
	return err
}

// encodeInputEvent serializes a struct input_event with a zero timestamp;
// the kernel stamps events written to uinput itself.
func encodeInputEvent(typ, code uint16, value int32) []byte {
	buf := make([]byte, inputEventSize)
	binary.NativeEndian.PutUint16(buf[16:18], typ)
	binary.NativeEndian.PutUint16(buf[18:20], code)
	binary.NativeEndian.PutUint32(buf[20:24], uint32(value))
	return buf
}

// translateLinuxKeycode converts a unified Key to its evdev code
func translateLinuxKeycode(key Key) (uint16, bool) {
	switch key {
	case KeyPlay:
		return linuxKeyPlayPause, true
	case KeyNext:
		return linuxKeyNextSong, true
	case KeyPrevious:
		return linuxKeyPreviousSong, true
	case KeyVolumeUp:
		return linuxKeyVolumeUp, true
	case KeyVolumeDown:
		return linuxKeyVolumeDown, true
	default:
		return 0, false
	}
}
