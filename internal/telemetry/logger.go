package telemetry

import (
	"fmt"
	"github.com/pdx-cs-rust/parallel/config"
	"github.com/rs/zerolog"
	"io"
	"time"
)

const consoleTimeFormat = "15:04:05.000"

// NewLogger builds the diagnostics logger. Results never go through it.
func NewLogger(cfg config.LogCfg, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.DurationFieldUnit = time.Millisecond

	var out io.Writer = w
	if cfg.Format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "parallel").
		Logger(), nil
}
