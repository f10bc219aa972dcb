package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Console echoes notifications to the application log.
type Console struct {
	log zerolog.Logger
}

// NewConsole returns a sender writing to logger.
func NewConsole(logger zerolog.Logger) *Console {
	return &Console{log: logger}
}

func (console *Console) Name() string { return "console" }

func (console *Console) Send(_ context.Context, title, message string) error {
	console.log.Info().Str("title", title).Msg("Work Concentrator: " + message)
	return nil
}
