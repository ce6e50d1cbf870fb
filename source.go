package signals

import (
	"os"
	"os/signal"
)

// SignalSource abstracts the OS-level disposition table. It is primarily
// useful for injecting mocks during testing.
type SignalSource interface {
	// Notify arms delivery of the given signals to c.
	Notify(c chan<- os.Signal, sig ...os.Signal)
	// Stop cancels all deliveries to c.
	Stop(c chan<- os.Signal)
	// Reset restores the default disposition for the given signals.
	Reset(sig ...os.Signal)
}

// osSource is the production implementation of SignalSource. It delegates to
// the standard library's os/signal registration calls.
type osSource struct{}

func (osSource) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }

func (osSource) Stop(c chan<- os.Signal) { signal.Stop(c) }

func (osSource) Reset(sig ...os.Signal) { signal.Reset(sig...) }
