package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NotNil verifies that New returns a non-nil *Logger.
func TestNew_NotNil(t *testing.T) {
	l := New("test")
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every log entry produced by a logger
// created with New contains the expected "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNew_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	New("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestSetLevel_KnownLevels verifies that SetLevel applies known textual
// levels to the global zerolog level.
func TestSetLevel_KnownLevels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"  WARN  ", zerolog.WarnLevel},
	}
	for _, tc := range tests {
		SetLevel(tc.input)
		assert.Equal(t, tc.want, zerolog.GlobalLevel(), "level %q", tc.input)
	}
}

// TestSetLevel_UnknownFallsBackToInfo verifies that an unrecognised level
// string falls back to info instead of silencing or panicking.
func TestSetLevel_UnknownFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	SetLevel("verbose-ish")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestGetChildLogger_NotNil verifies that GetChildLogger returns a non-nil *Logger.
func TestGetChildLogger_NotNil(t *testing.T) {
	parent := New("parent")
	child := parent.GetChildLogger("scenes")
	require.NotNil(t, child)
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := New("parent")
	child := parent.GetChildLogger("scenes")
	assert.NotSame(t, parent, child)
}

// TestGetChildLogger_ComponentField verifies that the child logger carries
// the "component" field naming the subsystem.
func TestGetChildLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger("recording")
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recording", entry["component"])
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger("streaming")
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
