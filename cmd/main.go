package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"workscheduler/internal/core/model"
	"workscheduler/internal/core/phase"
	"workscheduler/internal/core/scheduler"
	"workscheduler/internal/logging"
	"workscheduler/internal/notify"
	"workscheduler/internal/storage"
)

const (
	appName = "WorkScheduler"
	appID   = "com.workscheduler.app"

	eventBuffer = 16
)

type options struct {
	fs         afero.Fs
	configPath string
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	root := &cobra.Command{
		Use:           "workscheduler",
		Short:         "Cyclic work and break timer",
		Long:          "Counts down a repeating sequence of work, short break and long break phases and notifies when each one starts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.resolvePath()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default <user config dir>/"+appName+"/settings.yaml)")

	root.AddCommand(
		newGUICmd(opts),
		newTUICmd(opts),
		newPhasesCmd(opts),
		newInitCmd(opts),
		newAutostartCmd(opts),
	)
	return root
}

func (opts *options) resolvePath() error {
	if opts.configPath != "" {
		return nil
	}
	path, err := storage.DefaultPath(appName)
	if err != nil {
		return err
	}
	opts.configPath = path
	return nil
}

func (opts *options) loadSettings() (model.Settings, error) {
	settings, err := storage.LoadSettings(opts.fs, opts.configPath)
	if err != nil {
		return settings, fmt.Errorf("load %s: %w", opts.configPath, err)
	}
	return settings, nil
}

// buildScheduler turns the configured phases into a scheduler. An empty or
// invalid phase list is fatal.
func buildScheduler(settings model.Settings, logger zerolog.Logger) (*scheduler.Scheduler, error) {
	phases, err := settings.PhaseList()
	if err != nil {
		return nil, err
	}
	sched, err := scheduler.New(phases)
	if err != nil {
		return nil, err
	}
	if seq, err := phase.Connect(phases); err == nil && seq.ZeroDurationChain() {
		logger.Warn().Int("phases", seq.Len()).Msg("adjacent zero-duration phases: the cycle will advance without waiting")
	}
	return sched, nil
}

func newLogger(cfg model.LogConfig, console io.Writer) (zerolog.Logger, io.Closer, error) {
	logger, closer, err := logging.New(logging.Config{
		Level:   cfg.Level,
		Console: cfg.Console,
		File:    cfg.File,
	}, console)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("init logger: %w", err)
	}
	return logger.With().Str("app", appName).Logger(), closer, nil
}

// newNotifier starts the notification service with the senders enabled in
// cfg. desktop may be nil when no fyne app is running.
func newNotifier(cfg model.NotifyConfig, desktop notify.Sender, logger zerolog.Logger) *notify.Service {
	var senders []notify.Sender
	if cfg.Console {
		senders = append(senders, notify.NewConsole(logger))
	}
	if cfg.Desktop && desktop != nil {
		senders = append(senders, desktop)
	}
	if cfg.Chime {
		senders = append(senders, notify.NewChime())
	}
	return notify.New(notify.Config{
		Title:         cfg.Title,
		QueueSize:     cfg.QueueSize,
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
	}, logger, senders...)
}
