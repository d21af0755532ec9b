package main

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/getlantern/systray"
)

// trayPollInterval is how often the tray re-reads the flag file so CLI toggles show up.
const trayPollInterval = time.Second

func init() {
	// The tray event loop must own the main thread on macOS.
	runtime.LockOSThread()
}

// trayLabels returns the menu-bar title and status line for the flag state.
func trayLabels(enabled bool) (title, status string) {
	if enabled {
		return "⏯", "● Enabled"
	}
	return "⏹", "○ Disabled"
}

// trayMenu holds the menu items whose look follows the enabled flag.
type trayMenu struct {
	mu      sync.Mutex
	known   bool
	enabled bool
	gated   bool

	status   *systray.MenuItem
	toggle   *systray.MenuItem
	keyItems []*systray.MenuItem
}

func (m *trayMenu) refresh(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.known && m.enabled == enabled {
		return
	}
	m.known, m.enabled = true, enabled

	title, status := trayLabels(enabled)
	systray.SetTitle(title)
	m.status.SetTitle(status)
	if enabled {
		m.toggle.Check()
	} else {
		m.toggle.Uncheck()
	}
	for _, item := range m.keyItems {
		if enabled || !m.gated {
			item.Enable()
		} else {
			item.Disable()
		}
	}
}

// runTray shows the menu-bar item and blocks until Quit is chosen or ctx ends.
func runTray(ctx context.Context, a *App) error {
	a.logger.Debug("starting tray", "state_file", a.store.Path())
	systray.Run(func() { onTrayReady(ctx, a) }, func() {
		a.logger.Debug("tray stopped")
	})
	return nil
}

func onTrayReady(ctx context.Context, a *App) {
	systray.SetTooltip("mediakey")

	menu := &trayMenu{gated: a.cfg.Gated}
	menu.status = systray.AddMenuItem("", "Current status")
	menu.status.Disable()
	menu.toggle = systray.AddMenuItemCheckbox("Enabled", "Allow media keys to be sent", false)
	systray.AddSeparator()

	keys := []struct {
		title string
		key   Key
	}{
		{"Play/Pause", KeyPlay},
		{"Next", KeyNext},
		{"Previous", KeyPrevious},
		{"Volume Up", KeyVolumeUp},
		{"Volume Down", KeyVolumeDown},
	}
	for _, k := range keys {
		item := systray.AddMenuItem(k.title, "Send "+k.key.String())
		menu.keyItems = append(menu.keyItems, item)

		go func(item *systray.MenuItem, key Key) {
			for range item.ClickedCh {
				_ = a.Send(ctx, key)
			}
		}(item, k.key)
	}

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit mediakey")

	menu.refresh(a.Enabled())

	go func() {
		for range menu.toggle.ClickedCh {
			a.SetEnabled(!a.Enabled())
			menu.refresh(a.Enabled())
		}
	}()

	go func() {
		ticker := time.NewTicker(trayPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				systray.Quit()
				return
			case <-ticker.C:
				menu.refresh(a.Enabled())
			}
		}
	}()

	go func() {
		<-mQuit.ClickedCh
		systray.Quit()
	}()
}
