package slogx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var dl atomic.Pointer[Logger]

func init() {
	SetDefault(New(slog.Default().Handler()))
}

// Setup describes the process-wide logger. Service, when set, is attached to
// every record so server and CLI output can be told apart in shared sinks.
type Setup struct {
	Level   string
	Pretty  bool
	Service string

	// Wrap decorates the final handler, outermost last.
	Wrap []func(slog.Handler) slog.Handler
}

// InitGlobal replaces the default logger. Pretty output is meant for a
// terminal; everything else is JSON.
func InitGlobal(w io.Writer, s Setup) error {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return fmt.Errorf("init global logger: %v", err)
	}

	var h slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	if s.Pretty {
		h = tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.Kitchen})
	}

	for _, wrap := range s.Wrap {
		h = wrap(h)
	}

	l := New(h)
	if s.Service != "" {
		l = l.With(slog.String("service", s.Service))
	}
	SetDefault(l)

	return nil
}

func SetDefault(l *Logger) {
	dl.Store(l)
}

func Default() *Logger {
	return dl.Load()
}

// Component is the default logger tagged with the subsystem writing through it.
func Component(name string) *Logger {
	return Default().With(slog.String("component", name))
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}

func Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	Default().Log(ctx, level, msg, attrs...)
}
