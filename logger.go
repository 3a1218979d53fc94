package lambdalog

import (
	"context"
	"time"
)

// shared is the factory state every Logger points at. Immutable after Build.
type shared struct {
	exec      *Execution
	observers []Observer
	now       func() time.Time
}

// Logger is the multi-level facade for one logger name. Its level is resolved
// once at creation. Logging never fails the caller. Loggers come from a
// Factory; the zero Logger discards everything.
type Logger struct {
	name  string
	level Level
	exec  *Execution
	sh    *shared
}

func (l *Logger) Name() string { return l.name }
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether entries at level would be emitted.
func (l *Logger) Enabled(level Level) bool { return l.level.Enables(level) }

func (l *Logger) TraceEnabled() bool { return l.level.Enables(LevelTrace) }
func (l *Logger) DebugEnabled() bool { return l.level.Enables(LevelDebug) }
func (l *Logger) InfoEnabled() bool  { return l.level.Enables(LevelInfo) }
func (l *Logger) WarnEnabled() bool  { return l.level.Enables(LevelWarn) }
func (l *Logger) ErrorEnabled() bool { return l.level.Enables(LevelError) }

// Level entry points. A trailing non-nil error argument is rendered as the
// trace suffix and is not used for {} substitution.

func (l *Logger) Trace(msg string, args ...any) { l.Log(LevelTrace, msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.Log(LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.Log(LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.Log(LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.Log(LevelError, msg, args...) }

// Log emits msg at level, inferring a trailing error argument.
func (l *Logger) Log(level Level, msg string, args ...any) {
	if !l.level.Enables(level) {
		return
	}
	args, err := splitError(args)
	l.emit(level, msg, args, err)
}

// LogError emits msg at level with an explicit error. All args are
// substitutable, including error values.
func (l *Logger) LogError(level Level, msg string, err error, args ...any) {
	if !l.level.Enables(level) {
		return
	}
	l.emit(level, msg, args, err)
}

// WithContext returns a copy routed to the Execution carried by ctx. Without
// one, the copy keeps the logger's own Execution.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	child := *l
	child.exec = executionFrom(ctx, l.exec)
	return &child
}

func (l *Logger) emit(level Level, msg string, args []any, err error) {
	if l.exec == nil || l.sh == nil {
		// zero Logger, not obtained from a Factory
		return
	}
	line := formatEntry(l.name, level, msg, args, err)
	deferred := l.exec.EnqueueOrWrite(line)

	obs := l.sh.observers
	if len(obs) == 0 {
		return
	}
	entry := Entry{
		At:       l.sh.now(),
		Logger:   l.name,
		Level:    level,
		Line:     line,
		Deferred: deferred,
	}
	for _, o := range obs {
		o.OnLog(entry)
	}
}
