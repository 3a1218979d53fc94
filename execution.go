package lambdalog

import (
	"context"
	"sync"
)

// Execution holds the active sink of one unit of work and the lines logged
// before that sink was installed. Once a sink is installed the queue is
// drained in FIFO order and later lines bypass it.
type Execution struct {
	mu      sync.Mutex
	sink    Sink
	pending []string
}

// NewExecution returns an Execution with no sink installed.
func NewExecution() *Execution { return &Execution{} }

var defaultExecution = NewExecution()

// DefaultExecution is the process-wide Execution used when a context carries
// none. The Lambda Go runtime serves one invocation per process at a time.
func DefaultExecution() *Execution { return defaultExecution }

// Install sets the active sink, replacing any previous one, and flushes the
// pending queue into it. A nil sink is ignored.
func (e *Execution) Install(s Sink) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = s
	for _, line := range e.pending {
		s.WriteLine(line)
	}
	e.pending = nil
}

// Clear removes the active sink and discards still-queued lines, returning
// how many were discarded. Clearing an empty Execution is a no-op.
func (e *Execution) Clear() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.pending)
	e.sink = nil
	e.pending = nil
	return n
}

// Sink returns the active sink, or nil.
func (e *Execution) Sink() Sink {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sink
}

// Pending returns the number of queued lines.
func (e *Execution) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// EnqueueOrWrite writes line to the active sink, or queues it when none is
// installed. It reports whether the line was deferred.
func (e *Execution) EnqueueOrWrite(line string) (deferred bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sink != nil {
		e.sink.WriteLine(line)
		return false
	}
	e.pending = append(e.pending, line)
	return true
}

type executionKey struct{}

// NewContext returns a copy of ctx carrying e.
func NewContext(ctx context.Context, e *Execution) context.Context {
	return context.WithValue(ctx, executionKey{}, e)
}

// ExecutionFrom returns the Execution carried by ctx, or DefaultExecution.
func ExecutionFrom(ctx context.Context) *Execution {
	return executionFrom(ctx, defaultExecution)
}

func executionFrom(ctx context.Context, def *Execution) *Execution {
	if ctx == nil {
		return def
	}
	if e, ok := ctx.Value(executionKey{}).(*Execution); ok && e != nil {
		return e
	}
	return def
}
