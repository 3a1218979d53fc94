package writer

import "github.com/trickstertwo/xclock"

// ErrorHandler defines how write errors are handled.
type ErrorHandler func(error)

// Options configures the writer sink.
type Options struct {
	// NewlineReplacement replaces every "\n" inside a line. Lambda reads
	// function stdout as newline separated events, so "\r" keeps a multi-line
	// entry (e.g. a stack trace) in one event. Empty keeps newlines.
	NewlineReplacement string

	// Prefix is written before every line.
	Prefix string

	// Timestamp prepends the write time using TimeFormat (default RFC3339Nano).
	Timestamp  bool
	TimeFormat string
	Clock      xclock.Clock // optional; defaults to xclock.Now

	ErrorHandler ErrorHandler

	// Buffer tuning: initial capacity of the line buffer.
	// Defaults to 512 when <= 0
	BufferSize int
}
