// Package runlog records every remote call an export run issues, and any
// error text returned, to an append-only JSON log file.
package runlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the single writer for one run's log file.
type Logger struct {
	z zerolog.Logger
	f *os.File
}

// Open creates or appends to the log file at path.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{z: zerolog.New(f).With().Timestamp().Logger(), f: f}, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// Call records a remote call about to be issued.
func (l *Logger) Call(op, resource string) {
	l.z.Info().Str("op", op).Str("resource", resource).Msg("call")
}

// CallError records a failed remote call with the returned error text.
func (l *Logger) CallError(op, resource string, err error) {
	l.z.Error().Str("op", op).Str("resource", resource).Str("error", err.Error()).Msg("call failed")
}

// Skip records a tolerated per-item failure.
func (l *Logger) Skip(kind, name, reason string) {
	l.z.Warn().Str("kind", kind).Str("name", name).Str("reason", reason).Msg("skipped")
}

// Collision records a detail path written more than once in a run.
func (l *Logger) Collision(path string) {
	l.z.Warn().Str("path", path).Msg("duplicate resource name, overwriting")
}

func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
