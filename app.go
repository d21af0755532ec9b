package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kidandcat/mediakey/internal/config"
	"github.com/kidandcat/mediakey/internal/state"
)

// errUnknownCommand is returned after usage has been printed for an unrecognised command.
var errUnknownCommand = errors.New("unknown command")

// App dispatches mediakey commands
type App struct {
	cfg       *config.Config
	store     *state.Store
	notifier  Notifier
	autostart Autostart
	logger    *slog.Logger
	stdout    io.Writer
	program   string

	// openPoster is called only when a key is actually sent,
	// so control commands never touch the input device.
	openPoster func() (KeyPoster, error)
}

// Execute runs the command in args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.Send(ctx, KeyPlay)
	}

	command := strings.ToLower(args[0])
	switch command {
	case "enable":
		a.SetEnabled(true)
		return nil
	case "disable":
		a.SetEnabled(false)
		return nil
	case "status":
		fmt.Fprintf(a.stdout, "mediakey is %s\n", enabledWord(a.Enabled()))
		return nil
	case "tray":
		return runTray(ctx, a)
	case "autostart":
		return a.autostartCommand(args[1:])
	}

	key, ok := lookupKey(command)
	if !ok {
		fmt.Fprintf(a.stdout, "Unknown command: %s\n", command)
		a.printUsage()
		return errUnknownCommand
	}
	return a.Send(ctx, key)
}

// Enabled reports the persisted flag.
func (a *App) Enabled() bool {
	return a.store.Enabled()
}

// SetEnabled persists the flag, reports it and shows a notification.
// Write and notification failures are logged and otherwise ignored.
func (a *App) SetEnabled(enabled bool) {
	if err := a.store.SetEnabled(enabled); err != nil {
		a.logger.Debug("failed to persist enabled flag", "path", a.store.Path(), "err", err)
	}

	word := enabledWord(enabled)
	fmt.Fprintf(a.stdout, "mediakey %s\n", word)

	if a.cfg.Notify {
		if err := a.notifier.Notify("mediakey", word); err != nil {
			a.logger.Debug("failed to show notification", "err", err)
		}
	}
}

// Send presses key unless the flag gates it off.
// Injection failures are logged and otherwise ignored.
func (a *App) Send(ctx context.Context, key Key) error {
	if a.cfg.Gated && !a.store.Enabled() {
		a.logger.Debug("mediakey disabled, not sending key", "key", key)
		return nil
	}

	poster, err := a.openPoster()
	if err != nil {
		a.logger.Debug("failed to open key poster", "backend", a.cfg.Backend, "err", err)
		return nil
	}
	defer poster.Close()

	if err := Press(ctx, poster, key, a.cfg.KeyDelay); err != nil {
		a.logger.Debug("failed to send media key", "key", key, "err", err)
		return nil
	}
	a.logger.Debug("sent media key", "key", key)
	return nil
}

func (a *App) autostartCommand(args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	switch sub {
	case "enable":
		if err := a.autostart.Enable(); err != nil {
			return fmt.Errorf("failed to enable autostart: %w", err)
		}
		fmt.Fprintln(a.stdout, "mediakey autostart enabled")
	case "disable":
		if err := a.autostart.Disable(); err != nil {
			return fmt.Errorf("failed to disable autostart: %w", err)
		}
		fmt.Fprintln(a.stdout, "mediakey autostart disabled")
	case "status":
		fmt.Fprintf(a.stdout, "mediakey autostart is %s\n", enabledWord(a.autostart.IsEnabled()))
	default:
		fmt.Fprintf(a.stdout, "Unknown command: autostart %s\n", sub)
		a.printUsage()
		return errUnknownCommand
	}
	return nil
}

func (a *App) printUsage() {
	fmt.Fprintf(a.stdout, "Usage: %s [play|pause|playpause|next|prev|volup|voldown]\n", a.program)
	fmt.Fprintf(a.stdout, "       %s [enable|disable|status]\n", a.program)
	fmt.Fprintf(a.stdout, "       %s [tray|autostart [enable|disable|status]]\n", a.program)
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
