package signals

import "errors"

var (
	// ErrAlreadyInstalled is returned by New while another live Signals
	// instance holds the process-wide bridge.
	ErrAlreadyInstalled = errors.New("signals: already installed")

	// ErrClosed is returned once the owning Signals instance has been
	// closed.
	ErrClosed = errors.New("signals: closed")

	// ErrNotSupported is returned for kinds that cannot be armed, such as
	// Kill and Stop, which the OS refuses to deliver to handlers.
	ErrNotSupported = errors.New("signals: signal not supported")
)
