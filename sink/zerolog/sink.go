// Package zerologsink writes lambdalog lines through an rs/zerolog logger.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/lambdalog"
)

// Sink forwards each pre-formatted line as the message of one zerolog event
// at a fixed level.
type Sink struct {
	l     zerolog.Logger
	level zerolog.Level
}

var _ lambdalog.Sink = (*Sink)(nil)

func New(l zerolog.Logger, level lambdalog.Level) *Sink {
	return &Sink{l: l, level: mapLevel(level)}
}

// WriteLine emits one event.
// Fast pre-check against GetLevel() avoids allocating a zerolog.Event when
// the backend filters the sink level out.
func (s *Sink) WriteLine(line string) {
	if s.level < s.l.GetLevel() {
		return
	}
	s.l.WithLevel(s.level).Msg(line)
}

// mapLevel converts lambdalog.Level to zerolog.Level.
// Anything above Error is written as Error to avoid zerolog.Fatal() exits.
func mapLevel(l lambdalog.Level) zerolog.Level {
	switch {
	case l <= lambdalog.LevelTrace:
		return zerolog.TraceLevel
	case l <= lambdalog.LevelDebug:
		return zerolog.DebugLevel
	case l <= lambdalog.LevelInfo:
		return zerolog.InfoLevel
	case l <= lambdalog.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
