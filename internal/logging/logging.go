package logging

import (
	"io"
	"log"
	"log/slog"
	"strings"
)

// Logger is the process-wide slog instance.
var Logger = slog.Default()

// Init installs a text handler writing to w at the given level.
// Tables go to stdout, so w is normally stderr.
func Init(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Route the standard log package through the same writer.
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return Logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
