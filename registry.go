package signals

import "sync"

// registry is the process-wide table of subscribed kinds. Mutations happen
// only through the façade; the armed set at the source must equal this set
// after every mutating call returns.
type registry struct {
	mu    sync.Mutex
	kinds map[SignalKind]struct{}
}

func newRegistry() *registry {
	return &registry{kinds: make(map[SignalKind]struct{})}
}

func (r *registry) add(k SignalKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k] = struct{}{}
}

func (r *registry) remove(k SignalKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.kinds, k)
}

func (r *registry) has(k SignalKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.kinds[k]
	return ok
}

// snapshot returns the subscribed kinds in enumeration order.
func (r *registry) snapshot() []SignalKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	ks := make([]SignalKind, 0, len(r.kinds))
	for k := SignalKind(0); k < numKinds; k++ {
		if _, ok := r.kinds[k]; ok {
			ks = append(ks, k)
		}
	}
	return ks
}

// clear empties the registry and returns what was subscribed, in
// enumeration order.
func (r *registry) clear() []SignalKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	ks := make([]SignalKind, 0, len(r.kinds))
	for k := SignalKind(0); k < numKinds; k++ {
		if _, ok := r.kinds[k]; ok {
			ks = append(ks, k)
		}
	}
	r.kinds = make(map[SignalKind]struct{})
	return ks
}
