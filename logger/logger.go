// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-obs-remote SDK.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// SDK code passes *Logger by pointer and obtains scoped loggers via
// FromContext or GetChildLogger.
package logger

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// SDK to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a production-ready *Logger for the given role label
// (e.g. "obs-remote", "obsctl").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     components sharing one output;
//   - a "ts" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func New(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel applies a textual log level ("debug", "info", "warn", "error")
// to the global zerolog level. Unknown values fall back to info.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and carries a "component" field naming the subsystem
// (e.g. "scenes", "recording"). The child can be enriched further without
// affecting the parent logger.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
