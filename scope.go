package lambdalog

import "context"

// ScopeOption customizes Scope and ScopeContext.
type ScopeOption func(*scopeConfig)

type scopeConfig struct {
	onDiscard func(n int)
}

// OnDiscard is called after teardown when queued lines were never delivered.
func OnDiscard(f func(n int)) ScopeOption {
	return func(c *scopeConfig) { c.onDiscard = f }
}

// Scope installs s into e, runs work and clears e on every exit path,
// including panics.
func Scope(e *Execution, s Sink, work func() error, opts ...ScopeOption) error {
	var cfg scopeConfig
	for _, o := range opts {
		o(&cfg)
	}
	e.Install(s)
	defer func() {
		if n := e.Clear(); n > 0 && cfg.onDiscard != nil {
			cfg.onDiscard(n)
		}
	}()
	return work()
}

// ScopeContext is Scope over the Execution carried by ctx. work receives a
// context carrying that Execution so Logger.WithContext routes to it.
func ScopeContext(ctx context.Context, s Sink, work func(context.Context) error, opts ...ScopeOption) error {
	e := ExecutionFrom(ctx)
	ctx = NewContext(ctx, e)
	return Scope(e, s, func() error { return work(ctx) }, opts...)
}
