// Package logging builds the process logger: a console handler plus, when a
// directory is configured, one rotating file per level.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"finance-dashboard/internal/config"
)

type traceIDKey struct{}

// New returns the root logger and a closer for the log files.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	return NewWithWriter(os.Stdout, level, cfg)
}

func NewWithWriter(console io.Writer, level Level, cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{
			Level:       level.Slog(),
			ReplaceAttr: replaceLevelAttr,
		}),
	}

	var files closers
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, err
		}
		for _, lvl := range fileLevels {
			if lvl < level {
				continue
			}
			w := &lumberjack.Logger{
				Filename:   filepath.Join(cfg.Dir, lvl.String()+".log"),
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
			}
			files = append(files, w)
			handlers = append(handlers, &exactLevelHandler{
				level: lvl.Slog(),
				next:  slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl.Slog(), ReplaceAttr: replaceLevelAttr}),
			})
		}
	}

	return slog.New(&fanoutHandler{handlers: handlers}), files, nil
}

// Log dispatches msg at the given application level.
func Log(ctx context.Context, logger *slog.Logger, level Level, msg string, args ...any) {
	logger.Log(ctx, level.Slog(), msg, args...)
}

func Critical(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger.Log(ctx, SlogCritical, msg, args...)
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Discard is a logger for tests and tools that want no output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for _, cl := range c {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// fanoutHandler sends each record to every handler enabled for its level and
// adds the trace id from the context.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		r = r.Clone()
		r.AddAttrs(slog.String("trace_id", traceID))
	}

	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}

// exactLevelHandler passes through only records of one level, so each file
// holds its own level and nothing above it.
type exactLevelHandler struct {
	level slog.Level
	next  slog.Handler
}

func (h *exactLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level == h.level && h.next.Enabled(ctx, level)
}

func (h *exactLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level != h.level {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *exactLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &exactLevelHandler{level: h.level, next: h.next.WithAttrs(attrs)}
}

func (h *exactLevelHandler) WithGroup(name string) slog.Handler {
	return &exactLevelHandler{level: h.level, next: h.next.WithGroup(name)}
}
