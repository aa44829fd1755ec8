package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New builds the process logger. format is "json" or "text".
func New(w io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "", "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return slog.New(handler).With("service", "fixpackd"), nil
}

func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
