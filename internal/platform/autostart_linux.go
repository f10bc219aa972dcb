//go:build linux

package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func defaultBaseDir() (string, error) {
	return defaultConfigDir()
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func (item *LoginItem) entryPath() (string, error) {
	configDir, err := item.baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", item.slug()+".desktop"), nil
}

func (item *LoginItem) enable() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := item.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := afero.WriteFile(item.fs, path, []byte(item.desktopEntry()), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) disable() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	exists, err := afero.Exists(item.fs, path)
	if err != nil || !exists {
		return err
	}
	if err := item.fs.Remove(path); err != nil {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) enabled() (bool, error) {
	path, err := item.entryPath()
	if err != nil {
		return false, err
	}
	return afero.Exists(item.fs, path)
}

func (item *LoginItem) desktopEntry() string {
	args := make([]string, 0, len(item.command))
	for _, arg := range item.command {
		if strings.ContainsAny(arg, " \t\"") {
			arg = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		}
		args = append(args, arg)
	}

	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`, item.appName, strings.Join(args, " "))
}
