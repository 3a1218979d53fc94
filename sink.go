package lambdalog

// Sink is the host's level-less "write one line" primitive for one unit of
// work. Implementations are assumed synchronous and must not log through the
// Execution they are installed in.
type Sink interface {
	WriteLine(line string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string)

func (f SinkFunc) WriteLine(line string) { f(line) }
