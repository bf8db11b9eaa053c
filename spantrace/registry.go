package spantrace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// registry holds the stack of active spans for each goroutine. Entries are
// removed when a goroutine pops its last span, so goroutines that balance
// their Push/Pop calls leave nothing behind.
var registry = struct {
	mu     sync.Mutex
	stacks map[uint64][]Frame
}{
	stacks: make(map[uint64][]Frame),
}

// Push records a named span as the innermost active span on the calling
// goroutine. It is normally called by the tracing collaborator when a span
// starts; Pop must be called on the same goroutine when the span ends.
func Push(name string, sc trace.SpanContext) {
	id := goroutineID()

	registry.mu.Lock()
	registry.stacks[id] = append(registry.stacks[id], Frame{Name: name, SpanContext: sc})
	registry.mu.Unlock()
}

// Pop removes the innermost active span on the calling goroutine. Calling Pop
// on a goroutine with no active spans is a no-op.
func Pop() {
	id := goroutineID()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	stack := registry.stacks[id]
	switch len(stack) {
	case 0:
		return
	case 1:
		// Last span on this goroutine; drop the entry entirely so the
		// registry does not accumulate exited goroutines.
		delete(registry.stacks, id)
	default:
		registry.stacks[id] = stack[:len(stack)-1]
	}
}

// Capture snapshots the active span hierarchy of the calling goroutine.
// It is synchronous, cannot fail, and returns a defensive copy: spans popped
// after the capture do not affect the returned Trace.
func Capture() Trace {
	id := goroutineID()

	registry.mu.Lock()
	stack := registry.stacks[id]
	frames := make([]Frame, len(stack))
	copy(frames, stack)
	registry.mu.Unlock()

	if len(frames) == 0 {
		return Trace{}
	}
	return Trace{frames: frames}
}

// goroutineID parses the numeric goroutine id out of the first line of the
// runtime stack header ("goroutine 123 [running]:"). The runtime exposes no
// API for this; parsing the header is the established workaround for
// goroutine-local state.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	header := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}

	id, err := strconv.ParseUint(string(header), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
