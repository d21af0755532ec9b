package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Backend names accepted by Config.Backend
const (
	// BackendAuto uses the native backend and falls back to robotgo
	BackendAuto = "auto"

	// BackendNative posts events through the platform API directly
	BackendNative = "native"

	// BackendRobotgo posts events through robotgo
	BackendRobotgo = "robotgo"
)

// Environment variables read by FromEnv
const (
	EnvStateFile = "MEDIAKEY_STATE_FILE"
	EnvBackend   = "MEDIAKEY_BACKEND"
	EnvGated     = "MEDIAKEY_GATED"
	EnvNotify    = "MEDIAKEY_NOTIFY"
	EnvKeyDelay  = "MEDIAKEY_KEY_DELAY"
	EnvLogLevel  = "MEDIAKEY_LOG_LEVEL"
)

// Config represents the mediakey configuration
type Config struct {
	// StateFile is the path of the enabled flag file, relative to the working directory unless absolute
	StateFile string `json:"stateFile"`

	// Backend selects how key events are injected (auto, native, robotgo)
	Backend string `json:"backend"`

	// Gated makes key commands a no-op while the flag is disabled
	Gated bool `json:"gated"`

	// Notify shows a desktop notification when the flag is toggled
	Notify bool `json:"notify"`

	// KeyDelay is the pause between key-down and key-up
	KeyDelay time.Duration `json:"keyDelay"`

	// LogLevel is the minimum level written to stderr
	LogLevel slog.Level `json:"logLevel"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		StateFile: ".mediakey_enabled",
		Backend:   BackendAuto,
		Gated:     true,
		Notify:    true,
		KeyDelay:  10 * time.Millisecond,
		LogLevel:  slog.LevelWarn,
	}
}

// FromEnv applies overrides from the environment. Unset or empty variables are ignored.
func (c *Config) FromEnv(getenv func(key string) string) error {
	if v := getenv(EnvStateFile); v != "" {
		c.StateFile = v
	}
	if v := getenv(EnvBackend); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := getenv(EnvGated); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvGated, err)
		}
		c.Gated = b
	}
	if v := getenv(EnvNotify); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvNotify, err)
		}
		c.Notify = b
	}
	if v := getenv(EnvKeyDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvKeyDelay, err)
		}
		c.KeyDelay = d
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}
	return nil
}

// Validate checks the configuration for values the program cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StateFile) == "" {
		return fmt.Errorf("state file path must not be empty")
	}
	switch c.Backend {
	case BackendAuto, BackendNative, BackendRobotgo:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendAuto, BackendNative, BackendRobotgo)
	}
	if c.KeyDelay < 0 {
		return fmt.Errorf("key delay must not be negative, got %s", c.KeyDelay)
	}
	return nil
}
