//go:build darwin

package main

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics

#import <AppKit/AppKit.h>
#include <CoreGraphics/CoreGraphics.h>

// postSystemKey posts an NX_SYSDEFINED media key event to the HID event tap.
static int postSystemKey(int key, int down) {
    @autoreleasepool {
        NSEventModifierFlags flags = down ? 0xa00 : 0xb00;
        NSInteger data1 = (key << 16) | ((down ? 0xa : 0xb) << 8);
        NSEvent *event = [NSEvent otherEventWithType:NSEventTypeSystemDefined
                                            location:NSZeroPoint
                                       modifierFlags:flags
                                           timestamp:0
                                        windowNumber:0
                                             context:nil
                                             subtype:8
                                               data1:data1
                                               data2:-1];
        if (event == nil) {
            return 0;
        }
        CGEventRef cgEvent = [event CGEvent];
        if (cgEvent == NULL) {
            return 0;
        }
        CGEventPost(kCGHIDEventTap, cgEvent);
        return 1;
    }
}
*/
import "C"

import "fmt"

// macOS NX_KEYTYPE media key codes
const (
	nxKeyTypeSoundUp   = 0
	nxKeyTypeSoundDown = 1
	nxKeyTypePlay      = 16
	nxKeyTypeNext      = 17
	nxKeyTypePrevious  = 18
)

// DarwinKeyPoster implements KeyPoster for macOS using system-defined NSEvents
type DarwinKeyPoster struct{}

func newNativePoster() (KeyPoster, error) {
	return &DarwinKeyPoster{}, nil
}

func (p *DarwinKeyPoster) Post(key Key, event KeyEventType) error {
	code, ok := translateKey(key)
	if !ok {
		return fmt.Errorf("darwin: unsupported key %s", key)
	}
	down := 0
	if event == KeyDown {
		down = 1
	}
	if C.postSystemKey(C.int(code), C.int(down)) == 0 {
		return fmt.Errorf("darwin: failed to create system event for %s", key)
	}
	return nil
}

func (p *DarwinKeyPoster) Close() error {
	return nil
}

// translateKey converts a unified Key to its NX_KEYTYPE code
func translateKey(key Key) (int, bool) {
	switch key {
	case KeyPlay:
		return nxKeyTypePlay, true
	case KeyNext:
		return nxKeyTypeNext, true
	case KeyPrevious:
		return nxKeyTypePrevious, true
	case KeyVolumeUp:
		return nxKeyTypeSoundUp, true
	case KeyVolumeDown:
		return nxKeyTypeSoundDown, true
	default:
		return 0, false
	}
}
