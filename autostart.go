package main

// Autostart is the interface for platform-specific autostart functionality.
// An enabled autostart launches "mediakey tray" at login.
type Autostart interface {
	// IsEnabled returns whether autostart is currently enabled
	IsEnabled() bool

	// Enable sets up the tray to start on login
	Enable() error

	// Disable removes the autostart configuration
	Disable() error
}

// trayCommand is the argument autostart entries pass to the executable.
const trayCommand = "tray"
