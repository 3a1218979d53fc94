// Package zapsink writes lambdalog lines through a go.uber.org/zap logger.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lambdalog"
)

// Sink forwards each pre-formatted line as the message of one zap entry.
// Lines carry their own level token, so every entry is written at one fixed
// zap level.
type Sink struct {
	l     *zap.Logger
	level zapcore.Level
}

var _ lambdalog.Sink = (*Sink)(nil)

// New creates a sink for the provided zap logger writing at level.
func New(l *zap.Logger, level lambdalog.Level) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, level: toZapLevel(level)}
}

// WriteLine emits one entry. Uses Logger.Check so a backend filtering above
// the sink level costs nothing.
func (s *Sink) WriteLine(line string) {
	if ce := s.l.Check(s.level, line); ce != nil {
		ce.Write()
	}
}

// Sync flushes buffered zap output.
func (s *Sink) Sync() error { return s.l.Sync() }

func toZapLevel(l lambdalog.Level) zapcore.Level {
	switch {
	case l <= lambdalog.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case l <= lambdalog.LevelInfo:
		return zapcore.InfoLevel
	case l <= lambdalog.LevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}
