package lambdalog

import (
	"github.com/trickstertwo/xclock"
)

// Factory resolves logger names against a load-once configuration and hands
// out a fresh Logger per lookup.
type Factory struct {
	resolver *Resolver
	sh       *shared
}

// NewFactory builds a Factory over an in-memory configuration mapping.
func NewFactory(props map[string]string) *Factory {
	return NewBuilder().WithSource(Properties(props)).Build()
}

// Logger returns a new Logger for name. Repeated calls return distinct but
// behaviorally identical instances.
func (f *Factory) Logger(name string) *Logger {
	return &Logger{
		name:  name,
		level: f.resolver.Effective(name),
		exec:  f.sh.exec,
		sh:    f.sh,
	}
}

// Resolver exposes the parsed configuration.
func (f *Factory) Resolver() *Resolver { return f.resolver }

// Config for constructing a Factory (Factory data structure).
type Config struct {
	Source       Source
	ErrorHandler ErrorHandler // diagnostics; defaults to stderr
	Execution    *Execution   // defaults to DefaultExecution()
	Observers    []Observer
	Clock        xclock.Clock // optional; defaults to xclock.Now
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithSource(s Source) *Builder {
	b.cfg.Source = s
	return b
}

func (b *Builder) WithProperties(m map[string]string) *Builder {
	b.cfg.Source = Properties(m)
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

func (b *Builder) WithExecution(e *Execution) *Builder {
	b.cfg.Execution = e
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build loads the configuration once and constructs the Factory. It never
// fails: an unreadable source leaves every logger OFF.
func (b *Builder) Build() *Factory {
	return newFactory(b.cfg)
}

func newFactory(cfg Config) *Factory {
	onError := cfg.ErrorHandler
	if onError == nil {
		onError = defaultErrorHandler
	}
	exec := cfg.Execution
	if exec == nil {
		exec = DefaultExecution()
	}
	now := xclock.Now
	if cfg.Clock != nil {
		now = cfg.Clock.Now
	}
	var obs []Observer
	if len(cfg.Observers) > 0 {
		obs = make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
	}

	return &Factory{
		resolver: NewResolver(load(cfg.Source, onError), onError),
		sh: &shared{
			exec:      exec,
			observers: obs,
			now:       now,
		},
	}
}
