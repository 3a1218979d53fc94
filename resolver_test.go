package lambdalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverLongestMatchWins(t *testing.T) {
	t.Parallel()

	r := NewResolver(map[string]string{
		RootLoggerKey:        "WARN",
		"lambda.logger.a.b":  "INFO",
		"lambda.logger.a.bc": "TRACE",
	}, nil)

	assert.Equal(t, LevelInfo, r.Effective("a.b.c"))
	assert.Equal(t, LevelInfo, r.Effective("a.b"))
	assert.Equal(t, LevelTrace, r.Effective("a.bc.d"))
	assert.Equal(t, LevelWarn, r.Effective("a"))
	assert.Equal(t, LevelWarn, r.Effective("a.x.b"))
	assert.Equal(t, LevelWarn, r.Effective("unrelated"))
	assert.Equal(t, LevelWarn, r.Effective(""))
}

func TestResolverOffEntryOverridesRoot(t *testing.T) {
	t.Parallel()

	r := NewResolver(map[string]string{
		RootLoggerKey:           "DEBUG",
		"lambda.logger.noisy":   "off",
		"lambda.logger.noisy.x": "error",
	}, nil)

	assert.Equal(t, LevelOff, r.Effective("noisy.y"))
	assert.Equal(t, LevelError, r.Effective("noisy.x.z"))
	assert.Equal(t, LevelDebug, r.Effective("other"))
}

func TestResolverWithoutRootIsOff(t *testing.T) {
	t.Parallel()

	r := NewResolver(map[string]string{"lambda.logger.a": "INFO"}, nil)
	assert.Equal(t, LevelOff, r.Root())
	assert.Equal(t, LevelOff, r.Effective("b.c"))
	assert.Equal(t, LevelInfo, r.Effective("a.c"))
}

func TestResolverDropsInvalidEntries(t *testing.T) {
	t.Parallel()

	var diags []error
	r := NewResolver(map[string]string{
		RootLoggerKey:       "LOUD",
		"lambda.logger.a":   "nope",
		"lambda.logger.b":   "ERROR",
		"lambda.logger.1x":  "INFO",
		"lambda.logger.":    "INFO",
		"something.else":    "garbage",
		"lambda.loggerfoo":  "INFO",
		"lambda.logger.c..": "INFO",
	}, func(err error) { diags = append(diags, err) })

	require.Len(t, diags, 2)
	for _, err := range diags {
		assert.ErrorIs(t, err, ErrInvalidLevel)
	}
	assert.Contains(t, diags[0].Error(), "lambda.logger.a")
	assert.Contains(t, diags[1].Error(), RootLoggerKey)

	assert.Equal(t, LevelOff, r.Root())
	assert.Equal(t, LevelOff, r.Effective("a"))
	assert.Equal(t, LevelError, r.Effective("b"))
	assert.Equal(t, map[string]Level{"b": LevelError}, r.Entries())
}

func TestResolverLeadingDotFallsBackToRoot(t *testing.T) {
	t.Parallel()

	r := NewResolver(map[string]string{RootLoggerKey: "INFO", "lambda.logger.x": "TRACE"}, nil)
	assert.Equal(t, LevelInfo, r.Effective(".x"))
}
