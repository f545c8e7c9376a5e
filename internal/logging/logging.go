// Package logging configures the process's zerolog logger and adapts it to
// log/slog for code that takes a *slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// New returns a logger writing to out at level. format is "console" for
// human-readable output; anything else writes JSON lines.
func New(out io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Slog returns a *slog.Logger that writes through logger, enabled for the
// same levels logger is.
func Slog(logger zerolog.Logger) *slog.Logger {
	return slog.New(slogzerolog.Option{
		Level:  slogLevel(logger.GetLevel()),
		Logger: &logger,
	}.NewZerologHandler())
}

func slogLevel(level zerolog.Level) slog.Level {
	switch {
	case level >= zerolog.ErrorLevel:
		return slog.LevelError
	case level == zerolog.WarnLevel:
		return slog.LevelWarn
	case level == zerolog.InfoLevel:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
