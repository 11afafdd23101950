// Package log configures structured logging for the example workflows.
package log

import (
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog logger at the given level as the process
// default. Unknown level strings fall back to info.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(handler))
}

// ToLogLevel maps a level name to its slog level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrAttr wraps an error for passing to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
