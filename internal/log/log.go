// Package log wraps log/slog with the levels, formats and package-level
// helpers used across loxlite. Diagnostics meant for the user go through
// loxerrors reporters; this package only carries operational logs.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level represents the severity of a log message.
type Level slog.Level

const levelTraceMask = -8

const (
	LevelTrace Level = Level(levelTraceMask)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelWarn

func (l Level) String() string {
	if l == LevelTrace {
		return "TRACE"
	}
	return slog.Level(l).String()
}

// ParseLevel parses "trace", "debug", "info", "warn" or "error", case
// insensitive. Unknown input yields DefaultLevel.
func ParseLevel(s string) Level {
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	l := new(slog.Level)
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat parses "json" or "text". Unknown input yields DefaultFormat.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

type config struct {
	output io.Writer
	level  Level
	format Format
}

// Option configures a logger created by New or Config.
type Option func(*config)

func WithLevel(level Level) Option {
	return func(c *config) {
		c.level = level
	}
}

func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

func defaultConfig() config {
	return config{output: os.Stderr, level: DefaultLevel, format: DefaultFormat}
}

// New returns a logger writing to stderr at DefaultLevel in DefaultFormat,
// unless overridden by opts.
func New(opts ...Option) *slog.Logger {
	return newLogger(apply(defaultConfig(), opts...))
}

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func newLogger(c config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:       slog.Level(c.level),
		ReplaceAttr: replaceLevel,
	}

	if c.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(c.output, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(c.output, handlerOpts))
}

// replaceLevel prints the custom trace level by name instead of "DEBUG-4".
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(Level(level).String())
	}
	return a
}

var (
	mu      sync.Mutex
	current = defaultConfig()
	std     atomic.Pointer[slog.Logger]
)

func init() {
	std.Store(newLogger(current))
}

// Config applies opts on top of the package-level logger configuration.
// Options not given keep their previous values.
func Config(opts ...Option) {
	mu.Lock()
	defer mu.Unlock()

	current = apply(current, opts...)
	std.Store(newLogger(current))
}

// Reset restores the package-level logger to its defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	current = defaultConfig()
	std.Store(newLogger(current))
}

// Default returns the package-level logger.
func Default() *slog.Logger {
	return std.Load()
}

func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.Level(LevelTrace), msg, attrs...)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
