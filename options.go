package signals

// LoggerFunc receives debug output when enabled via WithDebug.
type LoggerFunc func(format string, args ...any)

// Option configures a Signals instance at construction time.
type Option func(*Signals)

// WithCapacity sets the hand-off buffer capacity. Bursts larger than the
// capacity drop the newest arrivals. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Signals) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l LoggerFunc) Option {
	return func(s *Signals) {
		if l != nil {
			s.logf = l
		}
	}
}

// WithDebug toggles debug logging.
func WithDebug(enabled bool) Option {
	return func(s *Signals) { s.debug = enabled }
}

// WithSource replaces the OS-backed signal source. Primarily useful for
// injecting mocks during testing.
func WithSource(src SignalSource) Option {
	return func(s *Signals) {
		if src != nil {
			s.src = src
		}
	}
}
