package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"workscheduler/internal/core/timekeeper"
)

func newPhasesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "Print the configured phase cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}
			sched, err := buildScheduler(settings, zerolog.Nop())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, sched.Len())
			for index, item := range sched.Phases() {
				rows = append(rows, []string{
					strconv.Itoa(index + 1),
					string(item.Kind),
					item.Label,
					timekeeper.FormatRemaining(item.DurationSeconds),
				})
			}
			ring := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "KIND", "LABEL", "DURATION").
				Rows(rows...)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "settings: %s\n", opts.configPath)
			fmt.Fprintln(out, ring.String())
			fmt.Fprintf(out, "%d phases, tick %s, repeats from #1\n", sched.Len(), settings.TickInterval)
			return nil
		},
	}
}
