package logger

import (
	"log/slog"
	"os"
)

type Logger struct {
	*slog.Logger
}

// New builds the service logger. Dev and test environments log text at debug
// level, everything else logs JSON at info level.
func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case "dev", "test":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{slog.New(handler)}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}
