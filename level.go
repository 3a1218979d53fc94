package lambdalog

import (
	"strings"

	"github.com/pkg/errors"
)

// Level mirrors slog numeric spacing. LevelOff is the absence of a configured
// level and disables everything.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelOff   Level = 16
)

// ErrInvalidLevel is returned by ParseLevel for unrecognized tokens.
var ErrInvalidLevel = errors.New("lambdalog: invalid level")

// String returns the upper-case token used in log lines and configuration.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Enables reports whether a logger configured at l emits entries at requested.
// LevelOff enables nothing.
func (l Level) Enables(requested Level) bool {
	return l != LevelOff && requested < LevelOff && requested >= l
}

// ParseLevel parses TRACE|DEBUG|INFO|WARN|ERROR|OFF, ignoring case and
// surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF":
		return LevelOff, nil
	default:
		return LevelOff, errors.Wrapf(ErrInvalidLevel, "%q", s)
	}
}
