package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerInfoWithPairs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.With("axis", "size").Info("resolved selection", "option", "lg")

	entry := decode(t, buf)
	require.Equal(t, "resolved selection", entry["message"])
	require.Equal(t, "size", entry["axis"])
	require.Equal(t, "lg", entry["option"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerWarnLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("replaced component", "component", "button")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"level":"warn"`)
	require.Contains(t, lines[0], `"component":"button"`)
}

func TestLoggerForComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.ForComponent("button").Debug("loaded schema")

	entry := decode(t, buf)
	require.Equal(t, "button", entry["component"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.ForComponent("modal").Error(errors.New("boom"), "failed", "size", "xl")

	entry := decode(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "modal", entry["component"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "xl", entry["size"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("schema document is valid", "components", 2)

	require.Contains(t, buf.String(), "schema document is valid")
	require.Contains(t, buf.String(), "components=")
}

func TestPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kv   []any
		want map[string]any
	}{
		{name: "empty", kv: nil, want: map[string]any{}},
		{name: "pairs", kv: []any{"axis", "size", "count", 2}, want: map[string]any{"axis": "size", "count": 2}},
		{name: "dangling key", kv: []any{"axis"}, want: map[string]any{"axis": nil}},
		{name: "non string key", kv: []any{7, "x"}, want: map[string]any{"7": "x"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, pairs(tt.kv))
		})
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.ForComponent("button").Warn("ignored")
		nilLogger.With("a", 1).Debug("ignored")
		Nop().Error(errors.New("boom"), "ignored")
	})
}
