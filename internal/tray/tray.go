// Package tray provides the system tray interface for the virtual-touch
// calculator.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle       func(enabled bool)
	onClear        func()
	onResetHistory func()
	onOpenPanel    func()
	onQuit         func()
	enabled        bool
	mu             sync.RWMutex

	// Menu items stored for later updates
	menuToggle     *systray.MenuItem
	menuLastButton *systray.MenuItem
}

// New creates a new Tray instance with enabled state set to true by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnClear sets the callback function for the clear menu item.
func (t *Tray) OnClear(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onClear = fn
}

// OnResetHistory sets the callback function for the reset history menu item.
func (t *Tray) OnResetHistory(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onResetHistory = fn
}

// OnOpenPanel sets the callback function for the open panel menu item.
func (t *Tray) OnOpenPanel(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpenPanel = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Sparsha")
	systray.SetTooltip("Sparsha Virtual Touch Calculator")

	t.menuToggle = systray.AddMenuItem("● Enabled", "Toggle touch detection")
	systray.AddSeparator()

	t.menuLastButton = systray.AddMenuItem("Last: none", "Last activated button")
	t.menuLastButton.Disable()
	systray.AddSeparator()

	menuClear := systray.AddMenuItem("Clear Calculator", "Reset the display and pending operation")
	menuResetHistory := systray.AddMenuItem("Reset History", "Forget completed calculations")
	systray.AddSeparator()

	menuOpenPanel := systray.AddMenuItem("Open Panel...", "Open the calculator panel in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Sparsha")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuClear.ClickedCh:
				t.handleClear()
			case <-menuResetHistory.ClickedCh:
				t.handleResetHistory()
			case <-menuOpenPanel.ClickedCh:
				t.handleOpenPanel()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	// Update menu item text based on new state
	if enabled {
		t.menuToggle.SetTitle("● Enabled")
	} else {
		t.menuToggle.SetTitle("○ Disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleClear handles the clear menu item click.
func (t *Tray) handleClear() {
	t.mu.RLock()
	callback := t.onClear
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleResetHistory handles the reset history menu item click.
func (t *Tray) handleResetHistory() {
	t.mu.RLock()
	callback := t.onResetHistory
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleOpenPanel handles the open panel menu item click.
func (t *Tray) handleOpenPanel() {
	t.mu.RLock()
	callback := t.onOpenPanel
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastButton updates the last activated button display in the menu.
func (t *Tray) SetLastButton(symbol string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastButton != nil {
		if symbol == "" {
			t.menuLastButton.SetTitle("Last: none")
		} else {
			t.menuLastButton.SetTitle("Last: " + symbol)
		}
	}
}
