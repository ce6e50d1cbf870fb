package signals

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// SignalKind identifies one of the Unix signals this package can observe.
// Kinds map bijectively onto the platform's signal numbers.
type SignalKind int

// Available signal kinds.
const (
	// Abort is the process abort signal.
	Abort SignalKind = iota
	// Alarm is the alarm clock.
	Alarm
	// Bus is access to an undefined portion of a memory object.
	Bus
	// Child means a child process terminated, stopped, or continued.
	Child
	// Continue resumes execution, if stopped.
	Continue
	// FPE is an erroneous arithmetic operation.
	FPE
	// Hangup is the terminal hangup.
	Hangup
	// Illegal is an illegal instruction.
	Illegal
	// Interrupt is the terminal interrupt signal.
	Interrupt
	// Kill cannot be caught or ignored.
	Kill
	// Pipe is a write on a pipe with no one to read it.
	Pipe
	// Quit is the terminal quit signal.
	Quit
	// Poll is a pollable event.
	Poll
	// Prof means the profiling timer expired.
	Prof
	// Segfault is an invalid memory reference.
	Segfault
	// Stop cannot be caught or ignored.
	Stop
	// TermStop is the terminal stop signal.
	TermStop
	// Sys is a bad system call.
	Sys
	// Terminate is the termination signal.
	Terminate
	// Trap is a trace/breakpoint trap.
	Trap
	// TTIN is a background process attempting to read.
	TTIN
	// TTOU is a background process attempting to write.
	TTOU
	// Urgent means high-bandwidth data is available at a socket.
	Urgent
	// User1 is user-defined signal 1.
	User1
	// User2 is user-defined signal 2.
	User2
	// WinSize means the window was resized.
	WinSize
	// XCPU means the CPU time limit was exceeded.
	XCPU
	// XFSZ means the file size limit was exceeded.
	XFSZ

	numKinds
)

var kindSignals = [numKinds]syscall.Signal{
	Abort:     syscall.SIGABRT,
	Alarm:     syscall.SIGALRM,
	Bus:       syscall.SIGBUS,
	Child:     syscall.SIGCHLD,
	Continue:  syscall.SIGCONT,
	FPE:       syscall.SIGFPE,
	Hangup:    syscall.SIGHUP,
	Illegal:   syscall.SIGILL,
	Interrupt: syscall.SIGINT,
	Kill:      syscall.SIGKILL,
	Pipe:      syscall.SIGPIPE,
	Quit:      syscall.SIGQUIT,
	Poll:      syscall.SIGIO,
	Prof:      syscall.SIGPROF,
	Segfault:  syscall.SIGSEGV,
	Stop:      syscall.SIGSTOP,
	TermStop:  syscall.SIGTSTP,
	Sys:       syscall.SIGSYS,
	Terminate: syscall.SIGTERM,
	Trap:      syscall.SIGTRAP,
	TTIN:      syscall.SIGTTIN,
	TTOU:      syscall.SIGTTOU,
	Urgent:    syscall.SIGURG,
	User1:     syscall.SIGUSR1,
	User2:     syscall.SIGUSR2,
	WinSize:   syscall.SIGWINCH,
	XCPU:      syscall.SIGXCPU,
	XFSZ:      syscall.SIGXFSZ,
}

var signalKinds = func() map[syscall.Signal]SignalKind {
	m := make(map[syscall.Signal]SignalKind, numKinds)
	for k, s := range kindSignals {
		m[s] = SignalKind(k)
	}
	return m
}()

func (k SignalKind) valid() bool {
	return k >= 0 && k < numKinds
}

// Signal returns the os.Signal corresponding to k.
func (k SignalKind) Signal() os.Signal {
	if !k.valid() {
		return syscall.Signal(0)
	}
	return kindSignals[k]
}

// Catchable reports whether the OS permits installing a handler for k.
// Kill and Stop cannot be caught.
func (k SignalKind) Catchable() bool {
	return k.valid() && k != Kill && k != Stop
}

// String returns the conventional signal name, e.g. "SIGINT".
func (k SignalKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("SignalKind(%d)", int(k))
	}
	return unix.SignalName(kindSignals[k])
}

// KindFromSignal maps a delivered os.Signal back to its kind.
func KindFromSignal(sig os.Signal) (SignalKind, bool) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return 0, false
	}
	k, ok := signalKinds[s]
	return k, ok
}

// KindFromName resolves a signal name such as "SIGUSR1". The lookup is
// case-insensitive and the "SIG" prefix is optional.
func KindFromName(name string) (SignalKind, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	if !strings.HasPrefix(n, "SIG") {
		n = "SIG" + n
	}
	s := unix.SignalNum(n)
	if s == 0 {
		return 0, false
	}
	k, ok := signalKinds[s]
	return k, ok
}

// Kinds returns every supported kind in enumeration order.
func Kinds() []SignalKind {
	ks := make([]SignalKind, numKinds)
	for i := range ks {
		ks[i] = SignalKind(i)
	}
	return ks
}
