// Package zerologger adapts github.com/rs/zerolog to the observability.Logger
// interface.
package zerologger

import (
	"github.com/rs/zerolog"

	"github.com/lexfrei/go-unifi-access/observability"
)

// Logger is an observability.Logger backed by zerolog.
type Logger struct {
	zl zerolog.Logger
}

// Compile-time check to ensure Logger implements the observability.Logger interface.
var _ observability.Logger = (*Logger)(nil)

// New wraps a zerolog.Logger. Level filtering, output, and formatting stay
// under the caller's control:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client, err := unifiaccess.NewWithConfig(&unifiaccess.ClientConfig{
//		Host:   host,
//		Token:  token,
//		Logger: zerologger.New(zl),
//	})
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debug logs a debug-level message with optional structured fields.
func (l *Logger) Debug(msg string, fields ...observability.Field) {
	l.emit(l.zl.Debug(), msg, fields)
}

// Info logs an info-level message with optional structured fields.
func (l *Logger) Info(msg string, fields ...observability.Field) {
	l.emit(l.zl.Info(), msg, fields)
}

// Warn logs a warning-level message with optional structured fields.
func (l *Logger) Warn(msg string, fields ...observability.Field) {
	l.emit(l.zl.Warn(), msg, fields)
}

// Error logs an error-level message with optional structured fields.
func (l *Logger) Error(msg string, fields ...observability.Field) {
	l.emit(l.zl.Error(), msg, fields)
}

// With returns a new logger with the given fields pre-populated.
//
//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l *Logger) With(fields ...observability.Field) observability.Logger {
	ctx := l.zl.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) emit(ev *zerolog.Event, msg string, fields []observability.Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}
