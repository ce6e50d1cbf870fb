package signals

import "context"

// Receiver is the consumer-facing endpoint. All handles returned by
// Signals.Receiver share one cursor over the same hand-off buffer: each
// observed signal is delivered to exactly one Next call process-wide.
type Receiver struct {
	ring *ring
}

// Next blocks until a signal has been observed. It returns ErrClosed once
// the owning Signals instance has been closed and the buffer is drained.
func (r *Receiver) Next() (PendingSignal, error) {
	return r.ring.next(context.Background())
}

// NextContext is Next with cancellation; it returns ctx.Err() when ctx ends
// first.
func (r *Receiver) NextContext(ctx context.Context) (PendingSignal, error) {
	return r.ring.next(ctx)
}

// TryNext returns the next observed signal without blocking.
func (r *Receiver) TryNext() (PendingSignal, bool) {
	return r.ring.tryNext()
}
