package ctxerr

import (
	"sync"

	"github.com/aalemi-dev/ctxerr/backtrace"
	"github.com/aalemi-dev/ctxerr/spantrace"
)

// ContextCapturer snapshots the logical span hierarchy active on the calling
// goroutine. Capture must be synchronous, must not perform I/O, and cannot
// fail; an empty snapshot is a valid result.
type ContextCapturer interface {
	Capture() spantrace.Trace
}

// BacktraceCapturer snapshots the physical call stack of the calling
// goroutine. Capture must be synchronous, must not perform I/O, and cannot
// fail; a degraded (empty) snapshot is passed through unchanged.
type BacktraceCapturer interface {
	Capture() backtrace.Trace
}

// spanTraceCapturer is the default ContextCapturer, backed by the
// goroutine-local registry maintained by the tracing collaborator.
type spanTraceCapturer struct{}

func (spanTraceCapturer) Capture() spantrace.Trace { return spantrace.Capture() }

// runtimeCapturer is the default BacktraceCapturer, backed by the Go runtime.
type runtimeCapturer struct{}

func (runtimeCapturer) Capture() backtrace.Trace { return backtrace.Capture() }

var capturers = struct {
	mu        sync.RWMutex
	context   ContextCapturer
	backtrace BacktraceCapturer
}{
	context:   spanTraceCapturer{},
	backtrace: runtimeCapturer{},
}

// SetContextCapturer replaces the facility New uses to snapshot the logical
// context. Passing nil restores the default spantrace-backed capturer.
// Intended for tests and for applications with their own span registry.
func SetContextCapturer(c ContextCapturer) {
	if c == nil {
		c = spanTraceCapturer{}
	}
	capturers.mu.Lock()
	capturers.context = c
	capturers.mu.Unlock()
}

// SetBacktraceCapturer replaces the facility Wrap and Fail use to snapshot
// the call stack. Passing nil restores the default runtime-backed capturer.
func SetBacktraceCapturer(c BacktraceCapturer) {
	if c == nil {
		c = runtimeCapturer{}
	}
	capturers.mu.Lock()
	capturers.backtrace = c
	capturers.mu.Unlock()
}

func captureContext() spantrace.Trace {
	capturers.mu.RLock()
	c := capturers.context
	capturers.mu.RUnlock()
	return c.Capture()
}

func captureBacktrace() backtrace.Trace {
	capturers.mu.RLock()
	c := capturers.backtrace
	capturers.mu.RUnlock()
	return c.Capture()
}
