package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05.000"

// ParseLevel parses a string into a zerolog level. Unknown values fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type options struct {
	out      io.Writer
	level    zerolog.Level
	colorize bool
	json     bool
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithColors enables or disables colorized console output.
func WithColors(enabled bool) Option {
	return func(o *options) {
		o.colorize = enabled
	}
}

// WithJSON writes raw JSON lines instead of the console format.
func WithJSON(enabled bool) Option {
	return func(o *options) {
		o.json = enabled
	}
}

// New creates a new logger with the given options.
func New(opts ...Option) zerolog.Logger {
	o := &options{
		out:      os.Stdout,
		level:    zerolog.InfoLevel,
		colorize: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	out := o.out
	if !o.json {
		out = zerolog.ConsoleWriter{
			Out:        o.out,
			TimeFormat: timeFormat,
			NoColor:    !o.colorize,
		}
	}

	return zerolog.New(out).
		Level(o.level).
		With().
		Timestamp().
		Logger()
}

// WithPrefix tags every entry of l with a component name.
func WithPrefix(l zerolog.Logger, prefix string) zerolog.Logger {
	return l.With().Str("component", prefix).Logger()
}

var defaultLogger = New()

// SetDefault sets the default logger.
func SetDefault(l zerolog.Logger) {
	defaultLogger = l
}

// Default returns the default logger.
func Default() zerolog.Logger {
	return defaultLogger
}

// FromContext returns the logger from the context, or the default logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return defaultLogger
}

// NewContext returns a new context with the given logger.
func NewContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
