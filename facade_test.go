package lambdalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalFacade(t *testing.T) {
	f, exec := newTestFactory(map[string]string{RootLoggerKey: "INFO"})
	prev := global.Load()
	SetGlobal(f)
	defer global.Store(prev)

	sink := &recordingSink{}
	exec.Install(sink)
	Get("app.main").Info("started in {}ms", 12)

	assert.Same(t, f, F())
	assert.Equal(t, []string{"[app.main] INFO  started in 12ms"}, sink.Lines())
}
