// Package signals captures Unix signals from ordinary application code
// instead of from within the restricted signal-handler execution context.
//
// OS delivery interrupts a thread at an arbitrary point and confines the
// handler to reentrant-safe operations. The Go runtime performs that
// restricted half of the hand-off; this package owns everything above it: a
// process-wide singleton claim, a subscription registry mirrored into the OS
// disposition table, and a bounded hand-off buffer drained through blocking
// Receiver reads.
//
//	sigs, err := signals.New()
//	if err != nil {
//		// another instance already holds the bridge
//	}
//	defer sigs.Close()
//
//	sigs.Subscribe(signals.Interrupt)
//	recv := sigs.Receiver()
//	for {
//		ps, err := recv.Next()
//		if err != nil {
//			break
//		}
//		fmt.Println(ps.Kind)
//	}
//
// At most one live Signals instance exists per process; New returns
// ErrAlreadyInstalled while another instance holds the claim. The guard
// covers this package's API only: code that calls os/signal directly is not
// prevented from racing the instance for dispositions.
//
// Unsubscribe and Close restore default dispositions rather than whatever
// was installed before. Arrivals beyond the hand-off capacity drop the
// newest occurrence; the loss is reported by Dropped.
package signals
