package lambdalog

import (
	"sync"
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var (
	global     atomic.Pointer[Factory]
	globalOnce sync.Once
)

// SetGlobal sets the global Factory (Singleton setter).
func SetGlobal(f *Factory) { global.Store(f) }

// F returns the global Factory. When none was set, it is built once from
// DefaultSource so that logging never panics.
func F() *Factory {
	if f := global.Load(); f != nil {
		return f
	}
	globalOnce.Do(func() {
		global.CompareAndSwap(nil, Default())
	})
	return global.Load()
}

// Get returns a Logger for name from the global Factory.
// Usage: var log = lambdalog.Get("com.example.orders")
func Get(name string) *Logger { return F().Logger(name) }
