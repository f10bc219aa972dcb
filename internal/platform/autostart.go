package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// LoginItem registers a command to run when the user logs in.
type LoginItem struct {
	fs      afero.Fs
	appName string
	command []string
	baseDir func() (string, error)
}

// NewLoginItem returns a login item for appName running command (the
// executable followed by its arguments).
func NewLoginItem(fs afero.Fs, appName string, command ...string) *LoginItem {
	return &LoginItem{
		fs:      fs,
		appName: appName,
		command: command,
		baseDir: defaultBaseDir,
	}
}

// Enable installs the login item, replacing an existing one.
func (item *LoginItem) Enable() error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if len(item.command) == 0 || item.command[0] == "" {
		return fmt.Errorf("enable autostart: command is empty")
	}
	if err := item.enable(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// Disable removes the login item. Removing a missing item is not an error.
func (item *LoginItem) Disable() error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := item.disable(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// Enabled reports whether the login item is installed.
func (item *LoginItem) Enabled() (bool, error) {
	if err := item.validate(); err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}
	enabled, err := item.enabled()
	if err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}
	return enabled, nil
}

func (item *LoginItem) validate() error {
	if strings.TrimSpace(item.appName) == "" {
		return fmt.Errorf("app name is empty")
	}
	return nil
}

func (item *LoginItem) slug() string {
	name := strings.ToLower(strings.TrimSpace(item.appName))
	return strings.ReplaceAll(name, " ", "-")
}

func defaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}
