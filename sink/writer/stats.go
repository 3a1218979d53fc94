package writer

import "sync/atomic"

type stats struct {
	lines  atomic.Uint64
	bytes  atomic.Uint64
	errors atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Lines  uint64
	Bytes  uint64
	Errors uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lines:  s.lines.Load(),
		Bytes:  s.bytes.Load(),
		Errors: s.errors.Load(),
	}
}
