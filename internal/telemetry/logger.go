package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the default logger with optional file output.
// Logs go to stderr so stdout stays free for benchmark reports.
func InitLogger(debug bool, logFile string) {
	slog.SetDefault(NewLogger(debug, logFile, false))
}

// NewLogger builds a JSON logger writing to stderr and, when logFile is set,
// appending to that file as well. silenceStderr drops the stderr handler.
func NewLogger(debug bool, logFile string, silenceStderr bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if !silenceStderr {
		handlers = append(handlers, slog.NewJSONHandler(os.Stderr, opts))
	}

	// Add file handler if requested
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			handlers = append(handlers, slog.NewJSONHandler(f, opts))
		} else {
			slog.Error("Failed to open log file", "path", logFile, "error", err)
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.NewJSONHandler(io.Discard, opts))
	case 1:
		return slog.New(handlers[0])
	default:
		return slog.New(&multiHandler{handlers: handlers})
	}
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
