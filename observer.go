package lambdalog

import "time"

// Entry is a read-only snapshot of one emitted line.
type Entry struct {
	At       time.Time
	Logger   string
	Level    Level
	Line     string
	Deferred bool // queued because no sink was installed yet
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
