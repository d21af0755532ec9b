package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kidandcat/mediakey/internal/config"
	"github.com/kidandcat/mediakey/internal/logging"
	"github.com/kidandcat/mediakey/internal/state"
)

// run is main without the process exit: it takes the OS fundamentals as
// arguments so it can be tested in isolation.
func run(ctx context.Context, args []string, getenv func(key string) string, stdout, stderr io.Writer) error {
	program := "mediakey"
	if len(args) > 0 {
		program = args[0]
		args = args[1:]
	}

	cfg, rest, err := loadConfig(program, args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Debug("configuration loaded",
		"state_file", cfg.StateFile,
		"backend", cfg.Backend,
		"gated", cfg.Gated,
		"notify", cfg.Notify,
		"key_delay", cfg.KeyDelay)

	var notifier Notifier = nopNotifier{}
	if cfg.Notify {
		notifier = DesktopNotifier{}
	}

	exe, err := os.Executable()
	if err != nil {
		exe = program
	}

	app := &App{
		cfg:       cfg,
		store:     state.NewStore(cfg.StateFile),
		notifier:  notifier,
		autostart: NewAutostart(exe, getenv),
		logger:    logger,
		stdout:    stdout,
		program:   program,
		openPoster: func() (KeyPoster, error) {
			return newPoster(cfg.Backend, logger)
		},
	}
	return app.Execute(ctx, rest)
}

// loadConfig layers defaults, environment and flags, in that order.
func loadConfig(program string, args []string, getenv func(string) string, stderr io.Writer) (*config.Config, []string, error) {
	cfg := config.DefaultConfig()
	if err := cfg.FromEnv(getenv); err != nil {
		return nil, nil, err
	}

	flags := flag.NewFlagSet(program, flag.ContinueOnError)
	flags.SetOutput(stderr)
	stateFile := flags.String("state-file", cfg.StateFile, "Path of the enabled flag file")
	backend := flags.String("backend", cfg.Backend, "Key injection backend: auto, native or robotgo")
	ungated := flags.Bool("ungated", false, "Send keys even when mediakey is disabled")
	noNotify := flags.Bool("no-notify", false, "Do not show a notification on enable/disable")
	keyDelay := flags.Duration("key-delay", cfg.KeyDelay, "Delay between key down and key up")
	verbose := flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg.StateFile = *stateFile
	cfg.Backend = strings.ToLower(*backend)
	cfg.KeyDelay = *keyDelay
	if *ungated {
		cfg.Gated = false
	}
	if *noNotify {
		cfg.Notify = false
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, flags.Args(), nil
}
