package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "ctchen222/tictactoe"

// MultiHandler is a slog.Handler that dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether the handler handles records at the given level.
// The handler is enabled if any of its underlying handlers is enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle handles the Record.
// It dispatches the record to every underlying handler enabled for its level.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

// WithAttrs returns a new MultiHandler whose handlers have the given attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return NewMultiHandler(newHandlers...)
}

// WithGroup returns a new MultiHandler whose handlers have the given group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return NewMultiHandler(newHandlers...)
}

// ParseLevel maps a configured level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch name {
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

// New builds a logger that writes to w and to the OpenTelemetry log bridge.
func New(w io.Writer, level slog.Level) *slog.Logger {
	otelHandler := otelslog.NewHandler(instrumentationName)

	consoleHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: level == slog.LevelDebug, // Include source file and line number
		Level:     level,
	})

	return slog.New(NewMultiHandler(consoleHandler, otelHandler))
}

// Init initializes the global slog logger to be backed by both stderr and OpenTelemetry.
// Stdout is left to the board output.
func Init(level string) *slog.Logger {
	slogLogger := New(os.Stderr, ParseLevel(level))
	slog.SetDefault(slogLogger)
	return slogLogger
}
