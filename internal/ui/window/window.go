package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"workscheduler/internal/core/timekeeper"
	"workscheduler/internal/ui/style"
)

// Callbacks defines window action handlers.
type Callbacks struct {
	OnStart func()
	OnReset func()
}

// Window is the main scheduler window: phase title, countdown, Start and
// Reset buttons and the completed-work marks.
type Window struct {
	window      fyne.Window
	background  *canvas.Rectangle
	titleLabel  *canvas.Text
	timerLabel  *canvas.Text
	marksLabel  *canvas.Text
	startButton *widget.Button
	resetButton *widget.Button
	callbacks   Callbacks
}

const (
	titleTextSize = 30
	timerTextSize = 35
	marksTextSize = 16
	minWidth      = float32(550)
	minHeight     = float32(300)
)

// New creates the main window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Work scheduler")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(style.NRGBA(style.Yellow))

	titleLabel := canvas.NewText(style.IdleTitle, style.NRGBA(style.Green))
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	titleLabel.TextSize = titleTextSize

	timerLabel := canvas.NewText(timekeeper.FormatRemaining(0), color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = timerTextSize

	marksLabel := canvas.NewText(style.IdleMarks, style.NRGBA(style.Red))
	marksLabel.Alignment = fyne.TextAlignCenter
	marksLabel.TextSize = marksTextSize

	timerWindow := &Window{
		window:     window,
		background: background,
		titleLabel: titleLabel,
		timerLabel: timerLabel,
		marksLabel: marksLabel,
		callbacks:  callbacks,
	}

	timerWindow.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if timerWindow.callbacks.OnStart != nil {
			timerWindow.callbacks.OnStart()
		}
	})
	timerWindow.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if timerWindow.callbacks.OnReset != nil {
			timerWindow.callbacks.OnReset()
		}
	})
	timerWindow.resetButton.Disable()

	buttons := container.NewHBox(timerWindow.startButton, layout.NewSpacer(), timerWindow.resetButton)
	content := container.NewVBox(titleLabel, timerLabel, buttons, marksLabel)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(minWidth, minHeight))

	return timerWindow
}

// Apply renders a timekeeper event. Safe to call from any goroutine.
func (timerWindow *Window) Apply(event timekeeper.Event) {
	fyne.Do(func() {
		timerWindow.applyUnsafe(event)
	})
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window without quitting the app.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (timerWindow *Window) SetCloseIntercept(handler func()) {
	timerWindow.window.SetCloseIntercept(handler)
}

// ShowAndRun displays the window and runs the fyne event loop.
func (timerWindow *Window) ShowAndRun() {
	timerWindow.window.ShowAndRun()
}

func (timerWindow *Window) applyUnsafe(event timekeeper.Event) {
	if event.Running {
		timerWindow.titleLabel.Text = event.Phase.Label
		timerWindow.titleLabel.Color = style.NRGBA(style.ColorHex(event.Phase.Kind))
		timerWindow.timerLabel.Text = event.Display
		timerWindow.marksLabel.Text = style.Marks(event.WorkIterations)
		timerWindow.startButton.Disable()
		timerWindow.resetButton.Enable()
	} else {
		timerWindow.titleLabel.Text = style.IdleTitle
		timerWindow.titleLabel.Color = style.NRGBA(style.Green)
		timerWindow.timerLabel.Text = timekeeper.FormatRemaining(0)
		timerWindow.marksLabel.Text = style.IdleMarks
		timerWindow.startButton.Enable()
		timerWindow.resetButton.Disable()
	}
	timerWindow.titleLabel.Refresh()
	timerWindow.timerLabel.Refresh()
	timerWindow.marksLabel.Refresh()
}
