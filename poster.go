package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kidandcat/mediakey/internal/config"
)

// errNativeUnsupported is returned by newNativePoster on platforms without a native backend.
var errNativeUnsupported = errors.New("no native media key backend for this platform")

// KeyPoster is the interface for platform-specific media key injection
type KeyPoster interface {
	// Post sends one phase (down or up) of a media key to the OS input stream
	Post(key Key, event KeyEventType) error

	// Close releases anything the poster holds open
	Close() error
}

// Press sends key-down, waits delay, then sends key-up.
// Key-up is sent even when ctx is cancelled during the wait so the key is never left held.
func Press(ctx context.Context, p KeyPoster, key Key, delay time.Duration) error {
	if err := p.Post(key, KeyDown); err != nil {
		return fmt.Errorf("failed to post %s key down: %w", key, err)
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	if err := p.Post(key, KeyUp); err != nil {
		return fmt.Errorf("failed to post %s key up: %w", key, err)
	}
	return ctx.Err()
}

// newPoster builds the poster for the configured backend.
func newPoster(backend string, logger *slog.Logger) (KeyPoster, error) {
	switch backend {
	case config.BackendRobotgo:
		return newRobotgoPoster(), nil
	case config.BackendNative:
		return newNativePoster()
	case config.BackendAuto:
		p, err := newNativePoster()
		if err != nil {
			logger.Debug("native backend unavailable, falling back to robotgo", "err", err)
			return newRobotgoPoster(), nil
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
