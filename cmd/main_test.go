package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workscheduler/internal/core/model"
	"workscheduler/internal/core/phase"
)

const testConfig = "/config/WorkScheduler/settings.yaml"

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", testConfig}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPhasesUsesDefaultsWithoutFile(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "phases")
	require.NoError(t, err)

	assert.Contains(t, out, "settings: "+testConfig)
	assert.Contains(t, out, "Working")
	assert.Contains(t, out, "Short break")
	assert.Contains(t, out, "Long break")
	assert.Contains(t, out, "25:00")
	assert.Contains(t, out, "20:00")
	assert.Contains(t, out, "10 phases")
}

func TestPhasesReadsSettingsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfig, []byte(`
tick_interval: 1s
phases:
  - kind: work
    label: Deep work
    duration: 50m
  - kind: long_break
    duration: 10m
`), 0o644))

	out, err := execute(t, fs, "phases")
	require.NoError(t, err)
	assert.Contains(t, out, "Deep work")
	assert.Contains(t, out, "50:00")
	assert.Contains(t, out, "2 phases")
}

func TestEmptyPhaseListIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfig, []byte("phases: []\n"), 0o644))

	_, err := execute(t, fs, "phases")
	require.Error(t, err)
	assert.ErrorIs(t, err, phase.ErrConfiguration)
}

func TestInitWritesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote default settings to "+testConfig)

	exists, err := afero.Exists(fs, testConfig)
	require.NoError(t, err)
	assert.True(t, exists)

	out, err = execute(t, fs, "phases")
	require.NoError(t, err)
	assert.Contains(t, out, "10 phases")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfig, []byte("phases: []\n"), 0o644))

	_, err := execute(t, fs, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, fs, "init", "--force")
	require.NoError(t, err)
	_, err = execute(t, fs, "phases")
	require.NoError(t, err)
}

func TestRejectsArguments(t *testing.T) {
	_, err := execute(t, afero.NewMemMapFs(), "phases", "extra")
	require.Error(t, err)
}

func TestBuildSchedulerWarnsOnZeroDurationChain(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	settings := model.DefaultSettings()
	settings.Phases = []model.PhaseConfig{
		{Kind: phase.KindWork, Duration: 0},
		{Kind: phase.KindShortBreak, Duration: 0},
		{Kind: phase.KindLongBreak, Duration: time.Minute},
	}
	sched, err := buildScheduler(settings, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, sched.Len())
	assert.Contains(t, logs.String(), "zero-duration")

	logs.Reset()
	_, err = buildScheduler(model.DefaultSettings(), logger)
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestNewNotifierSkipsMissingDesktop(t *testing.T) {
	cfg := model.DefaultSettings().Notify
	notifier := newNotifier(cfg, nil, zerolog.Nop())
	notifier.Notify("Working")
	notifier.Close()
}
