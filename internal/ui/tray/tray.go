package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"workscheduler/internal/core/timekeeper"
	"workscheduler/internal/ui/style"
)

const menuTitle = "Work Scheduler"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	startItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.resetItem.Disabled = true
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Apply renders a timekeeper event into the tray menu. Safe to call from any
// goroutine.
func (manager *Manager) Apply(event timekeeper.Event) {
	fyne.Do(func() {
		manager.applyUnsafe(event)
	})
}

func (manager *Manager) applyUnsafe(event timekeeper.Event) {
	manager.statusItem.Label = "Status: " + StatusText(event)
	manager.startItem.Disabled = event.Running
	manager.resetItem.Disabled = !event.Running
	manager.refreshMenu()
}

// StatusText summarises an event for the tray status line.
func StatusText(event timekeeper.Event) string {
	if !event.Running {
		return "idle"
	}
	status := fmt.Sprintf("%s %s", event.Phase.Label, event.Display)
	if marks := style.Marks(event.WorkIterations); marks != "" {
		status = fmt.Sprintf("%s (%s)", status, marks)
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.startItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}
