package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"workscheduler/internal/core/timekeeper"
	"workscheduler/internal/ui/term"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	settings, err := opts.loadSettings()
	if err != nil {
		return err
	}

	// The console writer would draw over the alt screen.
	logConfig := settings.Log
	logConfig.Console = false
	logger, closer, err := newLogger(logConfig, nil)
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

	notifier := newNotifier(settings.Notify, nil, logger)
	defer notifier.Close()

	keeper := timekeeper.New(sched, timekeeper.Config{
		TickInterval: settings.TickInterval,
		Notifier:     notifier,
		Logger:       logger,
	})
	defer keeper.Stop()

	events := keeper.Subscribe(eventBuffer)
	program := tea.NewProgram(
		term.New(keeper, events, keeper.Snapshot()),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
