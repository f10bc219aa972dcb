//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func defaultBaseDir() (string, error) {
	return defaultConfigDir()
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

// The Run key lives in the registry, so the filesystem is unused here.
func (item *LoginItem) enable() error {
	return runReg("add", registryRunKey, "/v", item.appName, "/t", "REG_SZ", "/d", item.commandLine(), "/f")
}

func (item *LoginItem) disable() error {
	enabled, err := item.enabled()
	if err != nil || !enabled {
		return err
	}
	return runReg("delete", registryRunKey, "/v", item.appName, "/f")
}

func (item *LoginItem) enabled() (bool, error) {
	err := exec.Command("reg", "query", registryRunKey, "/v", item.appName).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("reg query: %w", err)
}

func (item *LoginItem) commandLine() string {
	args := make([]string, 0, len(item.command))
	for _, arg := range item.command {
		args = append(args, `"`+strings.Trim(arg, `"`)+`"`)
	}
	return strings.Join(args, " ")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s failed: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
