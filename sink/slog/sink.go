// Package slogsink writes lambdalog lines through a log/slog logger.
package slogsink

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/lambdalog"
)

// Sink adapts lambdalog to the Go slog API. Every line is one record at a
// fixed level.
type Sink struct {
	l     *slog.Logger
	level slog.Level
}

var _ lambdalog.Sink = (*Sink)(nil)

// lambdalog levels share slog's numeric spacing.
func toSlog(l lambdalog.Level) slog.Level {
	if l > lambdalog.LevelError {
		return slog.LevelError
	}
	return slog.Level(l)
}

func New(l *slog.Logger, level lambdalog.Level) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l, level: toSlog(level)}
}

func (s *Sink) WriteLine(line string) {
	// Use LogAttrs for minimal allocations
	s.l.LogAttrs(context.Background(), s.level, line)
}

// NewJSON builds a Sink over a slog JSON handler.
func NewJSON(w io.Writer, level lambdalog.Level, opts *slog.HandlerOptions) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return New(slog.New(slog.NewJSONHandler(w, opts)), level)
}

// NewText builds a Sink over a slog text handler.
func NewText(w io.Writer, level lambdalog.Level, opts *slog.HandlerOptions) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return New(slog.New(slog.NewTextHandler(w, opts)), level)
}
