//go:build !linux && !darwin && !windows

package platform

import (
	"errors"
	"path/filepath"
)

var errAutostartUnsupported = errors.New("autostart is not supported on this platform")

func defaultBaseDir() (string, error) {
	return defaultConfigDir()
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func (item *LoginItem) enable() error { return errAutostartUnsupported }

func (item *LoginItem) disable() error { return errAutostartUnsupported }

func (item *LoginItem) enabled() (bool, error) { return false, nil }
