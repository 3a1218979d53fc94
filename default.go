package lambdalog

// Default builds a Factory from DefaultSource, routing to DefaultExecution
// and reporting diagnostics to stderr.
func Default() *Factory {
	return NewBuilder().WithSource(DefaultSource()).Build()
}

// New builds a Default Factory and sets it as global.
// It returns the global Factory for convenience.
func New() *Factory {
	f := Default()
	SetGlobal(f)
	return f
}
