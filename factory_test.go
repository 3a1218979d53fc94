package lambdalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryReturnsDistinctEquivalentLoggers(t *testing.T) {
	t.Parallel()

	f, _ := newTestFactory(map[string]string{
		RootLoggerKey:       "WARN",
		"lambda.logger.a.b": "INFO",
	})

	first, second := f.Logger("a.b.c"), f.Logger("a.b.c")
	assert.NotSame(t, first, second)
	assert.Equal(t, "a.b.c", first.Name())
	assert.Equal(t, LevelInfo, first.Level())
	assert.Equal(t, first.Level(), second.Level())

	assert.Equal(t, LevelWarn, f.Logger("z").Level())
}

func TestNewFactoryUsesDefaultExecution(t *testing.T) {
	t.Parallel()

	f := NewFactory(map[string]string{RootLoggerKey: "ERROR"})
	assert.Same(t, DefaultExecution(), f.Logger("x").exec)
	assert.True(t, f.Logger("x").ErrorEnabled())
	assert.False(t, f.Logger("x").WarnEnabled())
}
