package signals

import (
	"context"
	"sync"
)

// PendingSignal is a single observed signal occurrence. Seq is a
// monotonically increasing arrival marker assigned at hand-off time.
type PendingSignal struct {
	Kind SignalKind
	Seq  uint64
}

// ring is the bounded hand-off buffer between the forward loop and any
// Receiver handles. The producer never blocks: when full, the newest arrival
// is dropped and counted. A one-token wake channel pairs each push with at
// most one consumer wakeup; a consumer that leaves entries behind re-arms
// the token, so no wakeup is lost. All wake-channel operations happen under
// mu, which keeps close safe against concurrent sends.
type ring struct {
	mu      sync.Mutex
	buf     []PendingSignal
	head    int
	n       int
	seq     uint64
	dropped uint64
	closed  bool
	wake    chan struct{}
}

func newRing(capacity int) *ring {
	return &ring{
		buf:  make([]PendingSignal, capacity),
		wake: make(chan struct{}, 1),
	}
}

// push enqueues one occurrence. It reports false when the occurrence was
// discarded, either due to overflow or because the ring is closed.
func (r *ring) push(kind SignalKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	if r.n == len(r.buf) {
		r.dropped++
		return false
	}
	r.seq++
	r.buf[(r.head+r.n)%len(r.buf)] = PendingSignal{Kind: kind, Seq: r.seq}
	r.n++
	r.wakeOne()
	return true
}

// wakeOne posts the wake token if absent. Callers must hold mu and must not
// call after close.
func (r *ring) wakeOne() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// next blocks until an entry is available, the ring is closed and drained,
// or ctx is done.
func (r *ring) next(ctx context.Context) (PendingSignal, error) {
	for {
		r.mu.Lock()
		if r.n > 0 {
			ps := r.take()
			r.mu.Unlock()
			return ps, nil
		}
		if r.closed {
			r.mu.Unlock()
			return PendingSignal{}, ErrClosed
		}
		r.mu.Unlock()

		select {
		case <-r.wake:
		case <-ctx.Done():
			return PendingSignal{}, ctx.Err()
		}
	}
}

// tryNext is the non-blocking variant of next.
func (r *ring) tryNext() (PendingSignal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return PendingSignal{}, false
	}
	return r.take(), true
}

// take pops the oldest entry and re-arms the wake token when entries remain.
// Callers must hold mu.
func (r *ring) take() PendingSignal {
	ps := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	if r.n > 0 && !r.closed {
		r.wakeOne()
	}
	return ps
}

// close marks the ring closed and wakes every waiter. Entries already
// enqueued stay drainable; next reports ErrClosed only once the buffer is
// empty.
func (r *ring) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.wake)
}

func (r *ring) droppedCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}
