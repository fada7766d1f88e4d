package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
)

// Level represents a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel parses a level name (debug, info, warn, error).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// Config holds configuration for a slog-backed logger.
type Config struct {
	// Level sets the minimum level that is written.
	Level Level
	// AddSource includes the caller's file and line in each record.
	AddSource bool
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
}

// backend is implemented by each logging sink.
type backend interface {
	log(ctx context.Context, level Level, msg string, args ...any)
	with(args ...any) backend
}

// Logger provides structured, leveled logging. The zero value discards
// everything, as does a nil *Logger.
type Logger struct {
	b backend
}

// New returns a slog-backed logger writing to w.
func New(w io.Writer, cfg Config) *Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return NewSlogLogger(slog.New(h))
}

// NewSlogLogger wraps an existing *slog.Logger.
func NewSlogLogger(l *slog.Logger) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{b: slogBackend{l: l}}
}

// NewZapLogger wraps an existing *zap.Logger. Key/value pairs are passed to
// zap's sugared API.
func NewZapLogger(l *zap.Logger) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{b: zapBackend{l: l.Sugar()}}
}

// NewNopLogger returns a logger that discards all messages.
func NewNopLogger() *Logger {
	return &Logger{b: nopBackend{}}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelDebug, msg, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelInfo, msg, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelWarn, msg, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelError, msg, args...)
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.b == nil {
		return l
	}
	return &Logger{b: l.b.with(args...)}
}

func (l *Logger) log(ctx context.Context, level Level, msg string, args ...any) {
	if l == nil || l.b == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	l.b.log(ctx, level, msg, args...)
}

func slogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type slogBackend struct {
	l *slog.Logger
}

func (s slogBackend) log(ctx context.Context, level Level, msg string, args ...any) {
	s.l.Log(ctx, slogLevel(level), msg, args...)
}

func (s slogBackend) with(args ...any) backend {
	return slogBackend{l: s.l.With(args...)}
}

type zapBackend struct {
	l *zap.SugaredLogger
}

func (z zapBackend) log(_ context.Context, level Level, msg string, args ...any) {
	switch level {
	case LevelDebug:
		z.l.Debugw(msg, args...)
	case LevelInfo:
		z.l.Infow(msg, args...)
	case LevelWarn:
		z.l.Warnw(msg, args...)
	default:
		z.l.Errorw(msg, args...)
	}
}

func (z zapBackend) with(args ...any) backend {
	return zapBackend{l: z.l.With(args...)}
}

type nopBackend struct{}

func (nopBackend) log(context.Context, Level, string, ...any) {}
func (n nopBackend) with(...any) backend                      { return n }
