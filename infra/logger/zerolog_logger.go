package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

type settings struct {
	out    io.Writer
	level  zerolog.Level
	fields map[string]any
}

// Option configures a ZerologLogger.
type Option func(*settings)

// WithWriter sends log lines to w instead of stderr.
func WithWriter(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithLevel sets the minimum level. Unknown names keep the info level.
func WithLevel(level string) Option {
	return func(s *settings) {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && lvl != zerolog.NoLevel {
			s.level = lvl
		}
	}
}

// WithField attaches a constant field to every entry.
func WithField(key string, value any) Option {
	return func(s *settings) { s.fields[key] = value }
}

// NewZerologLogger creates a ZerologLogger using the APP_ENV environment variable
// to determine the output format. All logs include the provided component field.
// Stdout carries rendered schedules, so logs default to stderr.
func NewZerologLogger(component string, opts ...Option) Logger {
	s := settings{out: os.Stderr, level: zerolog.InfoLevel, fields: map[string]any{}}
	for _, opt := range opts {
		opt(&s)
	}
	out := s.out
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: s.out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).Level(s.level).With().Timestamp().Str("component", component).Fields(s.fields).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
