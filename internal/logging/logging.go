// Package logging builds the application's zerolog logger.
//
// Console output goes through zerolog.ConsoleWriter; the optional file sink
// receives JSON lines. Both share one level.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects the logger sinks.
type Config struct {
	Level   string
	Console bool
	File    string
}

// New returns a logger writing to the configured sinks and a closer for the
// log file. With no sink enabled the logger discards everything.
func New(cfg Config, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level := ParseLevel(cfg.Level, zerolog.InfoLevel)

	var writers []io.Writer
	if cfg.Console {
		if console == nil {
			console = os.Stdout
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: consoleTimeFormat})
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(cfg.File); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		closer = file
		writers = append(writers, zerolog.SyncWriter(file))
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// ParseLevel maps a config string to a zerolog level.
func ParseLevel(value string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return fallback
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
