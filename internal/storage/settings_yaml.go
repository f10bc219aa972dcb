package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"workscheduler/internal/core/model"
	"workscheduler/internal/core/phase"
)

const settingsFileName = "settings.yaml"

type yamlPhase struct {
	Kind     string `yaml:"kind"`
	Label    string `yaml:"label,omitempty"`
	Duration string `yaml:"duration"`
}

type yamlNotify struct {
	Title         string   `yaml:"title,omitempty"`
	Desktop       *bool    `yaml:"desktop,omitempty"`
	Chime         *bool    `yaml:"chime,omitempty"`
	Console       *bool    `yaml:"console,omitempty"`
	RatePerSecond *float64 `yaml:"rate_per_second,omitempty"`
	Burst         int      `yaml:"burst,omitempty"`
	QueueSize     int      `yaml:"queue_size,omitempty"`
}

type yamlLog struct {
	Level   string `yaml:"level,omitempty"`
	Console *bool  `yaml:"console,omitempty"`
	File    string `yaml:"file,omitempty"`
}

type yamlSettings struct {
	TickInterval  string      `yaml:"tick_interval,omitempty"`
	Phases        []yamlPhase `yaml:"phases"`
	Notifications yamlNotify  `yaml:"notifications"`
	Log           yamlLog     `yaml:"log"`
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads settings from a YAML file.
// If the file does not exist, default settings are returned. A file with an
// explicitly empty phase list yields settings without phases; the scheduler
// refuses to start with those.
func LoadSettings(fs afero.Fs, path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return model.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes settings to a YAML file, creating parent directories.
func SaveSettings(fs afero.Fs, path string, settings model.Settings) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYaml(settings))
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := afero.WriteFile(fs, path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) error {
	if fileData.Phases != nil {
		phases := make([]model.PhaseConfig, 0, len(fileData.Phases))
		for index, raw := range fileData.Phases {
			cfg, err := parsePhase(fmt.Sprintf("phases[%d]", index), raw)
			if err != nil {
				return err
			}
			phases = append(phases, cfg)
		}
		settings.Phases = phases
	}

	if strings.TrimSpace(fileData.TickInterval) != "" {
		tick, err := parseDuration("tick_interval", fileData.TickInterval)
		if err != nil {
			return err
		}
		if tick > 0 {
			settings.TickInterval = tick
		}
	}

	notify := fileData.Notifications
	if notify.Title != "" {
		settings.Notify.Title = notify.Title
	}
	if notify.Desktop != nil {
		settings.Notify.Desktop = *notify.Desktop
	}
	if notify.Chime != nil {
		settings.Notify.Chime = *notify.Chime
	}
	if notify.Console != nil {
		settings.Notify.Console = *notify.Console
	}
	if notify.RatePerSecond != nil && *notify.RatePerSecond >= 0 {
		settings.Notify.RatePerSecond = *notify.RatePerSecond
	}
	if notify.Burst > 0 {
		settings.Notify.Burst = notify.Burst
	}
	if notify.QueueSize > 0 {
		settings.Notify.QueueSize = notify.QueueSize
	}

	if fileData.Log.Level != "" {
		settings.Log.Level = fileData.Log.Level
	}
	if fileData.Log.Console != nil {
		settings.Log.Console = *fileData.Log.Console
	}
	settings.Log.File = fileData.Log.File
	return nil
}

func parsePhase(path string, raw yamlPhase) (model.PhaseConfig, error) {
	kind, err := phase.ParseKind(raw.Kind)
	if err != nil {
		return model.PhaseConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	duration, err := parseDuration(path+".duration", raw.Duration)
	if err != nil {
		return model.PhaseConfig{}, err
	}
	if duration%time.Second != 0 {
		return model.PhaseConfig{}, fmt.Errorf("%w: %s.duration: %q is not a whole number of seconds", phase.ErrConfiguration, path, raw.Duration)
	}
	return model.PhaseConfig{Kind: kind, Label: raw.Label, Duration: duration}, nil
}

func parseDuration(path, raw string) (time.Duration, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: %s: duration is required", phase.ErrConfiguration, path)
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid duration %q: %v", phase.ErrConfiguration, path, raw, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("%w: %s: duration must be >= 0", phase.ErrConfiguration, path)
	}
	return duration, nil
}

func toYaml(settings model.Settings) yamlSettings {
	phases := make([]yamlPhase, 0, len(settings.Phases))
	for _, cfg := range settings.Phases {
		label := cfg.Label
		if label == cfg.Kind.DefaultLabel() {
			label = ""
		}
		phases = append(phases, yamlPhase{
			Kind:     string(cfg.Kind),
			Label:    label,
			Duration: cfg.Duration.String(),
		})
	}

	notify := settings.Notify
	logConsole := settings.Log.Console
	return yamlSettings{
		TickInterval: settings.TickInterval.String(),
		Phases:       phases,
		Notifications: yamlNotify{
			Title:         notify.Title,
			Desktop:       &notify.Desktop,
			Chime:         &notify.Chime,
			Console:       &notify.Console,
			RatePerSecond: &notify.RatePerSecond,
			Burst:         notify.Burst,
			QueueSize:     notify.QueueSize,
		},
		Log: yamlLog{
			Level:   settings.Log.Level,
			Console: &logConsole,
			File:    settings.Log.File,
		},
	}
}
