// Package writer provides a lambdalog.Sink over an io.Writer, the shape of
// the Lambda host's stdout log stream.
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/lambdalog"
)

// Sink writes one newline-terminated record per line. Writes are serialized.
type Sink struct {
	mu   sync.Mutex
	w    io.Writer
	opts Options
	now  func() time.Time
	st   stats
}

var _ lambdalog.Sink = (*Sink)(nil)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "lambdalog/writer: %v\n", err) }

// New creates a Sink writing to w (os.Stdout when nil).
func New(w io.Writer, opts Options) *Sink {
	if w == nil {
		w = os.Stdout
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	if opts.Timestamp && opts.TimeFormat == "" {
		opts.TimeFormat = time.RFC3339Nano
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 512
	}
	now := xclock.Now
	if opts.Clock != nil {
		now = opts.Clock.Now
	}
	return &Sink{w: w, opts: opts, now: now}
}

// ForLambda returns a Sink that keeps each entry in a single CloudWatch event.
func ForLambda(w io.Writer) *Sink {
	return New(w, Options{NewlineReplacement: "\r"})
}

var bufPool = sync.Pool{New: func() any { b := make([]byte, 0, 512); return &b }}

// WriteLine formats and writes line. Write errors go to the ErrorHandler.
func (s *Sink) WriteLine(line string) {
	bp := bufPool.Get().(*[]byte)
	b := (*bp)[:0]
	if cap(b) < s.opts.BufferSize {
		b = make([]byte, 0, s.opts.BufferSize)
	}
	defer func() {
		if cap(b) <= 64*1024 {
			*bp = b
			bufPool.Put(bp)
		}
	}()

	if s.opts.Timestamp {
		b = s.now().AppendFormat(b, s.opts.TimeFormat)
		b = append(b, ' ')
	}
	b = append(b, s.opts.Prefix...)
	if s.opts.NewlineReplacement != "" && strings.IndexByte(line, '\n') >= 0 {
		line = strings.ReplaceAll(line, "\n", s.opts.NewlineReplacement)
	}
	b = append(b, line...)
	b = append(b, '\n')

	s.mu.Lock()
	n, err := s.w.Write(b)
	s.mu.Unlock()

	s.st.lines.Add(1)
	s.st.bytes.Add(uint64(n))
	if err != nil {
		s.st.errors.Add(1)
		s.opts.ErrorHandler(err)
	}
}

// WithPrefix returns a Sink that shares s's writer and write lock and
// prepends prefix to every line, after any prefix s already has. Counters
// are not shared.
func (s *Sink) WithPrefix(prefix string) *Sink {
	opts := s.opts
	opts.Prefix += prefix
	return &Sink{w: &lockedWriter{mu: &s.mu, w: s.w}, opts: opts, now: s.now}
}

// Stats returns a snapshot of internal counters.
func (s *Sink) Stats() StatsSnapshot { return s.st.snapshot() }

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
