package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"workscheduler/internal/core/timekeeper"
	"workscheduler/internal/notify"
	"workscheduler/internal/platform"
	"workscheduler/internal/ui/tray"
	"workscheduler/internal/ui/window"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Run the timer window and tray icon (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd, opts)
		},
	}
}

func runGUI(cmd *cobra.Command, opts *options) error {
	settings, err := opts.loadSettings()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(settings.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	sched, err := buildScheduler(settings, logger)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	notifier := newNotifier(settings.Notify, notify.NewDesktop(fyneApp), logger)
	defer notifier.Close()

	keeper := timekeeper.New(sched, timekeeper.Config{
		TickInterval: settings.TickInterval,
		Notifier:     notifier,
		Logger:       logger,
	})
	defer keeper.Stop()

	timerWindow := window.New(fyneApp, window.Callbacks{
		OnStart: func() { keeper.Start() },
		OnReset: func() { keeper.Reset() },
	})
	appliers := []func(timekeeper.Event){timerWindow.Apply}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:  timerWindow.Show,
			OnStart: func() { keeper.Start() },
			OnReset: func() { keeper.Reset() },
			OnQuit:  fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		timerWindow.SetCloseIntercept(timerWindow.Hide)
		appliers = append(appliers, trayManager.Apply)
	} else {
		logger.Info().Msg("system tray unsupported on this platform, closing the window quits")
	}

	events := keeper.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			for _, apply := range appliers {
				apply(event)
			}
		}
	}()

	logger.Info().Int("phases", sched.Len()).Dur("tick", settings.TickInterval).Msg("scheduler ready")
	timerWindow.ShowAndRun()
	return nil
}
