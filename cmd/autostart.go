package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"workscheduler/internal/platform"
)

func newAutostartCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage starting the timer window at login",
	}

	loginItem := func() (*platform.LoginItem, error) {
		executable, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolve executable: %w", err)
		}
		return platform.NewLoginItem(opts.fs, appName, executable, "gui", "--config", opts.configPath), nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Start the timer window at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				item, err := loginItem()
				if err != nil {
					return err
				}
				if err := item.Enable(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Stop starting the timer window at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				item, err := loginItem()
				if err != nil {
					return err
				}
				if err := item.Disable(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether autostart is enabled",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				item, err := loginItem()
				if err != nil {
					return err
				}
				enabled, err := item.Enabled()
				if err != nil {
					return err
				}
				status := "disabled"
				if enabled {
					status = "enabled"
				}
				fmt.Fprintln(cmd.OutOrStdout(), "autostart", status)
				return nil
			},
		},
	)
	return cmd
}
