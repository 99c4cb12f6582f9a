package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// AttrOption adds a field to a logger context.
type AttrOption func(l zerolog.Context) zerolog.Context

// Op names the list operation being evaluated.
func Op(name string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", name)
	}
}

// Law names the property being checked.
func Law(name string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("law", name)
	}
}

// Elapsed records a duration in milliseconds.
func Elapsed(dur time.Duration) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int64("elapsed_ms", dur.Milliseconds())
	}
}

// Logger is a scoped zerolog logger.
type Logger struct {
	zl *zerolog.Logger
}

// New returns a logger derived from the global logger with the scope field set.
func New(scope string) *Logger {
	zl := zerolog.Ctx(context.Background()).With().Str("s", scope).Logger()

	return &Logger{zl: &zl}
}

// Ctx returns the logger attached to ctx, or the global logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: zerolog.Ctx(ctx)}
}

// With returns a copy of the logger with the attributes added.
func (l *Logger) With(opts ...AttrOption) *Logger {
	c := l.zl.With()
	for _, opt := range opts {
		c = opt(c)
	}

	zl := c.Logger()

	return &Logger{zl: &zl}
}

// WithContext attaches the logger to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}

// Unwrap returns the underlying zerolog logger.
func (l *Logger) Unwrap() *zerolog.Logger {
	return l.zl
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.zl.Warn().Msgf(msg, args...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Msgf(msg, args...)
}

// InitGlobals creates the process logger writing to stderr and installs it as
// the fallback for contexts without a logger.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	l := newLogger(os.Stderr, level, json, noColor)
	zerolog.DefaultContextLogger = l

	return l
}

func newLogger(out io.Writer, level zerolog.Level, json, noColor bool) *zerolog.Logger {
	if !json {
		out = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return &l
}
