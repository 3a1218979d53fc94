package lambdalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// RootLoggerKey configures the level inherited by every unconfigured logger.
	RootLoggerKey = "lambda.rootLogger"
	// LoggerPrefix prefixes keys that configure a hierarchical logger.
	LoggerPrefix = "lambda.logger."
)

var loggerKeyPattern = regexp.MustCompile(`^lambda\.logger\.([a-zA-Z]\w*(?:\.[a-zA-Z]\w*)*)$`)

// ErrorHandler receives diagnostics that must never reach the caller.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "lambdalog: %v\n", err) }

// Resolver maps dotted logger names to their effective level.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	root   Level
	levels map[string]Level
}

// NewResolver parses the flat configuration mapping. Unrecognized keys are
// ignored; entries with invalid values are dropped and reported to onError.
func NewResolver(props map[string]string, onError ErrorHandler) *Resolver {
	if onError == nil {
		onError = defaultErrorHandler
	}
	r := &Resolver{root: LevelOff, levels: make(map[string]Level)}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var name string
		isRoot := key == RootLoggerKey
		if !isRoot {
			m := loggerKeyPattern.FindStringSubmatch(key)
			if m == nil {
				continue
			}
			name = m[1]
		}
		level, err := ParseLevel(props[key])
		if err != nil {
			onError(errors.Wrapf(err, "dropping %s", key))
			continue
		}
		if isRoot {
			r.root = level
		} else {
			r.levels[name] = level
		}
	}
	return r
}

// Effective walks name toward the root, stripping one trailing component at a
// time, and returns the first explicit level found or the root level.
func (r *Resolver) Effective(name string) Level {
	for {
		if level, ok := r.levels[name]; ok {
			return level
		}
		i := strings.LastIndexByte(name, '.')
		if i <= 0 {
			return r.root
		}
		name = name[:i]
	}
}

// Root returns the root level, LevelOff when unconfigured.
func (r *Resolver) Root() Level { return r.root }

// Entries returns a copy of the explicitly configured logger levels.
func (r *Resolver) Entries() map[string]Level {
	out := make(map[string]Level, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out
}
