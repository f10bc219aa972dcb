package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"workscheduler/internal/core/model"
	"workscheduler/internal/storage"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default phase cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exists, err := afero.Exists(opts.fs, opts.configPath)
			if err != nil {
				return fmt.Errorf("stat %s: %w", opts.configPath, err)
			}
			if exists && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", opts.configPath)
			}
			if err := storage.SaveSettings(opts.fs, opts.configPath, model.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote default settings to %s\n", opts.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")
	return cmd
}
