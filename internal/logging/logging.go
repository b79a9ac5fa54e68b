// Package logging builds the service's root zerolog logger.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sebasr/greeting-service/internal/config"
)

// New returns a root logger writing to out.
// JSON is the default output; the console format is meant for local development.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	logOutput := out
	if cfg.Format == config.LogFormatConsole {
		logOutput = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.NoColor = true
		})
	}

	return zerolog.New(logOutput).Level(level).With().Timestamp().Logger(), nil
}
