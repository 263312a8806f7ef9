// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// mikud client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Code should pass *Logger by pointer and obtain call-scoped loggers via
// FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// TraceIDField is the field name under which every call-scoped logger
// records its trace id.
const TraceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name
//     instead of the default file:line.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for command line use. Entries are
// appended to a "logs" file next to the executable so they do not mix with
// command output; stderr is used when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = logFile
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel changes the minimum level of the receiver. An empty string
// leaves the level untouched.
func (l *Logger) SetLevel(level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	l.Logger = l.Level(lvl)
	return nil
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

type traceIDKey struct{}

// WithTraceID returns a child logger tagged with traceID and a copy of ctx
// carrying both, so that FromContext and TraceIDFromContext pick them up
// further down the call.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(TraceIDField, traceID)
	})

	ctx = context.WithValue(ctx, traceIDKey{}, traceID)
	return child.WithContext(ctx), child
}

// TraceIDFromContext returns the trace id stored by WithTraceID, or "".
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. When ctx carries no logger, fallback is returned instead.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		if fallback != nil {
			return fallback
		}
		return Nop()
	}

	return &Logger{*l}
}
