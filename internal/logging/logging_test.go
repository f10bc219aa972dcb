package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "debug", want: zerolog.DebugLevel},
		{raw: " Warning ", want: zerolog.WarnLevel},
		{raw: "ERROR", want: zerolog.ErrorLevel},
		{raw: "", want: zerolog.InfoLevel},
		{raw: "loud", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw, zerolog.InfoLevel))
		})
	}
}

func TestConsoleRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger, closer, err := New(Config{Level: "warn", Console: true}, &out)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Str("phase", "work").Msg("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "phase=")
}

func TestFileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ws.log")
	logger, closer, err := New(Config{Level: "info", File: path}, nil)
	require.NoError(t, err)

	logger.Info().Str("label", "Working").Msg("phase started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label":"Working"`)
	assert.Contains(t, string(data), `"message":"phase started"`)
}

func TestNoSinkDiscards(t *testing.T) {
	logger, closer, err := New(Config{}, nil)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestBadFilePath(t *testing.T) {
	_, _, err := New(Config{File: filepath.Join(t.TempDir(), "missing", "dir", "ws.log")}, nil)
	require.Error(t, err)
}
