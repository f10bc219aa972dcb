//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var plistEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func defaultBaseDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return homeDir, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func (item *LoginItem) label() string {
	return "com.workscheduler." + item.slug()
}

func (item *LoginItem) entryPath() (string, error) {
	homeDir, err := item.baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", item.label()+".plist"), nil
}

func (item *LoginItem) enable() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := item.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create LaunchAgents dir: %w", err)
	}
	if err := afero.WriteFile(item.fs, path, []byte(item.launchAgent()), 0o644); err != nil {
		return fmt.Errorf("write plist: %w", err)
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
		return fmt.Errorf("remove plist: %w", err)
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

func (item *LoginItem) launchAgent() string {
	var arguments strings.Builder
	for _, arg := range item.command {
		fmt.Fprintf(&arguments, "\t\t<string>%s</string>\n", plistEscaper.Replace(arg))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
%s	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, plistEscaper.Replace(item.label()), arguments.String())
}
