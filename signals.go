package signals

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// installed is the process-wide claim on the signal bridge. The OS delivers
// each signal to one handler, so multiplexing has to happen above the OS
// layer; at most one live Signals instance may exist at a time.
var installed atomic.Bool

const defaultCapacity = 32

// Signals owns the process-wide signal bridge: the OS-level registration,
// the subscription registry, and the hand-off buffer read by Receiver
// handles.
type Signals struct {
	mu sync.Mutex

	// configuration, fixed at New
	src      SignalSource
	capacity int
	logf     LoggerFunc
	debug    bool

	// state
	reg    *registry
	ring   *ring
	sigch  chan os.Signal
	stopCh chan struct{}
	closed bool
}

// New claims the process-wide bridge and returns the owning handle. It
// returns ErrAlreadyInstalled while another live instance holds the claim.
// No kinds are armed until Subscribe is called.
func New(opts ...Option) (*Signals, error) {
	s := &Signals{
		src:      osSource{},
		capacity: defaultCapacity,
		logf:     func(string, ...any) {},
		reg:      newRegistry(),
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !installed.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInstalled
	}
	s.ring = newRing(s.capacity)
	s.sigch = make(chan os.Signal, s.capacity)
	go s.forward(s.sigch, s.stopCh)
	if s.debug {
		s.logf("signals: installed; capacity=%d", s.capacity)
	}
	return s, nil
}

// forward drains the runtime's delivery channel into the hand-off buffer.
// The runtime's own handler is the restricted-context half of the bridge;
// from here on everything runs in ordinary goroutine context.
func (s *Signals) forward(sigch chan os.Signal, stopCh chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case sig := <-sigch:
			kind, ok := KindFromSignal(sig)
			if !ok {
				continue
			}
			if !s.ring.push(kind) && s.debug {
				s.logf("signals: hand-off full; dropped %v", kind)
			}
		}
	}
}

// Subscribe arms kind; subsequent deliveries of kind are observable through
// Receiver. It is idempotent. The registry is mutated only after arming
// succeeded, so a failed call leaves no partial state.
func (s *Signals) Subscribe(kind SignalKind) error {
	if !kind.Catchable() {
		return fmt.Errorf("signals: subscribe %v: %w", kind, ErrNotSupported)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.reg.has(kind) {
		return nil
	}
	s.src.Notify(s.sigch, kind.Signal())
	s.reg.add(kind)
	if s.debug {
		s.logf("signals: subscribed %v", kind)
	}
	return nil
}

// Unsubscribe disarms kind and restores the default disposition. It is
// idempotent. Restore-to-default is the documented policy: no prior
// disposition is saved or replayed.
func (s *Signals) Unsubscribe(kind SignalKind) error {
	if !kind.valid() {
		return fmt.Errorf("signals: unsubscribe %v: %w", kind, ErrNotSupported)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if !s.reg.has(kind) {
		return nil
	}
	s.src.Reset(kind.Signal())
	s.reg.remove(kind)
	if s.debug {
		s.logf("signals: unsubscribed %v", kind)
	}
	return nil
}

// Subscribed returns the currently armed kinds in enumeration order.
func (s *Signals) Subscribed() []SignalKind {
	return s.reg.snapshot()
}

// Receiver returns a handle on the hand-off buffer's consumer side. Handles
// may be created freely; they all share one cursor (see Receiver).
func (s *Signals) Receiver() *Receiver {
	return &Receiver{ring: s.ring}
}

// Dropped reports how many observed signals were discarded because the
// hand-off buffer was full.
func (s *Signals) Dropped() uint64 {
	return s.ring.droppedCount()
}

// Close disarms every subscribed kind, stops the bridge, and releases the
// process-wide claim. Blocked Receiver reads fail with ErrClosed once the
// buffer is drained. Close is idempotent. Disarming strictly precedes
// destruction of the hand-off buffer, so a signal arriving mid-teardown is
// delivered or discarded, never lost into freed state.
func (s *Signals) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.src.Stop(s.sigch)
	kinds := s.reg.clear()
	if len(kinds) > 0 {
		sigs := make([]os.Signal, len(kinds))
		for i, k := range kinds {
			sigs[i] = k.Signal()
		}
		s.src.Reset(sigs...)
	}
	close(s.stopCh)
	s.mu.Unlock()

	s.ring.close()
	installed.Store(false)
	if s.debug {
		s.logf("signals: closed")
	}
	return nil
}
