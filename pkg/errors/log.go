package errors

import (
	"context"
	"log/slog"
)

// LogHandler writes reported failures to a slog.Logger. The zero value
// logs to slog.Default() without stacks.
type LogHandler struct {
	Logger  *slog.Logger
	Verbose bool
}

func (h *LogHandler) log(level slog.Level, msg, stack string, attrs ...slog.Attr) {
	l := h.Logger
	if l == nil {
		l = slog.Default()
	}
	if stack != "" && (h.Verbose || level >= slog.LevelError) {
		attrs = append(attrs, slog.String("stack", stack))
	}
	l.LogAttrs(context.Background(), level, msg, attrs...)
}

// HandleError logs at warn level.
func (h *LogHandler) HandleError(err *PresentError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	}
	if err.Presentation != "" {
		attrs = append(attrs, slog.String("presentation", err.Presentation))
	}
	h.log(slog.LevelWarn, "present error", err.StackTrace, attrs...)
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.log(slog.LevelError, "present panic", err.StackTrace,
		slog.String("op", err.Op), slog.Any("value", err.Value))
}

// HandleInvariant always includes the stack since a panic follows.
func (h *LogHandler) HandleInvariant(err *InvariantError) {
	if err == nil {
		return
	}
	h.log(slog.LevelError, "present invariant violated", err.StackTrace,
		slog.String("op", err.Op), slog.String("message", err.Message))
}
