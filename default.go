package siftlog

// The default registry backs the package-level convenience functions.
// It lives for the lifetime of the process; ResetLoggers is the only
// teardown. Applications that want isolation should construct their
// own Registry at their composition root and ignore these.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Log, StartLogger
// and ResetLoggers.
func Default() *Registry {
	return defaultRegistry
}

// Log delivers a record to every logger started on the default
// registry.
func Log(opts Options, args ...interface{}) {
	defaultRegistry.Log(opts, args...)
}

// StartLogger starts a logger on the default registry.
func StartLogger(cfg Config) *Logger {
	return defaultRegistry.StartLogger(cfg)
}

// ResetLoggers unregisters every logger on the default registry.
func ResetLoggers() {
	defaultRegistry.Reset()
}
