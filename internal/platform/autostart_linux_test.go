//go:build linux

package platform

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoginItem(fs afero.Fs, command ...string) *LoginItem {
	item := NewLoginItem(fs, "Work Scheduler", command...)
	item.baseDir = func() (string, error) { return "/home/user/.config", nil }
	return item
}

func TestLoginItemLifecycle(t *testing.T) {
	fs := afero.NewMemMapFs()
	item := newTestLoginItem(fs, "/opt/work scheduler/workscheduler", "gui", "--config", "/home/user/.config/WorkScheduler/settings.yaml")

	enabled, err := item.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, item.Enable())
	enabled, err = item.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	content, err := afero.ReadFile(fs, "/home/user/.config/autostart/work-scheduler.desktop")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name=Work Scheduler\n")
	assert.Contains(t, string(content), `Exec="/opt/work scheduler/workscheduler" gui --config /home/user/.config/WorkScheduler/settings.yaml`)

	require.NoError(t, item.Disable())
	enabled, err = item.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, item.Disable(), "disabling twice is harmless")
}

func TestLoginItemValidation(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := newTestLoginItem(fs).Enable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command is empty")

	unnamed := NewLoginItem(fs, " ", "/bin/true")
	assert.Error(t, unnamed.Enable())
	assert.Error(t, unnamed.Disable())
	_, err = unnamed.Enabled()
	assert.Error(t, err)
}
