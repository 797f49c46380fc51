// Package logger is the structured logger shared by the CLI and the showcase.
// Every call takes a message followed by key/value pairs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a nil-safe zerolog wrapper. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to opts.Writer, or stderr when unset.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied pairs.
func (l *Logger) With(kv ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(pairs(kv)).Logger()}
}

// ForComponent tags entries with the component being worked on.
func (l *Logger) ForComponent(name string) *Logger {
	return l.With("component", name)
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(pairs(kv)).Msg(msg)
}

func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(pairs(kv)).Msg(msg)
}

func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(pairs(kv)).Msg(msg)
}

// Error writes err under the "error" key alongside the pairs.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	l.base.Error().Err(err).Fields(pairs(kv)).Msg(msg)
}

// pairs turns alternating keys and values into a field map. Non-string keys
// are formatted with %v; a trailing key without a value maps to nil.
func pairs(kv []any) map[string]any {
	fields := make(map[string]any, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 < len(kv) {
			fields[key] = kv[i+1]
		} else {
			fields[key] = nil
		}
	}
	return fields
}
