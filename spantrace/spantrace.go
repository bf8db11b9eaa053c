package spantrace

import (
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Frame is one named logical span in a captured hierarchy.
type Frame struct {
	// Name is the span name passed to the tracing collaborator when the
	// span was started.
	Name string

	// SpanContext carries the OpenTelemetry trace and span identifiers of
	// the span, when the span was started under a real tracer provider.
	// It may be a zero value for spans recorded without one.
	SpanContext trace.SpanContext
}

// Trace is an immutable snapshot of the logical span hierarchy active at the
// moment Capture was called, ordered outermost first. The zero value is an
// empty snapshot.
type Trace struct {
	frames []Frame
}

// Empty reports whether the snapshot holds no spans.
func (t Trace) Empty() bool {
	return len(t.frames) == 0
}

// Frames returns a copy of the captured spans, outermost first.
func (t Trace) Frames() []Frame {
	if len(t.frames) == 0 {
		return nil
	}
	frames := make([]Frame, len(t.frames))
	copy(frames, t.frames)
	return frames
}

// String renders the hierarchy on a single line from outermost to innermost
// span, appending the trace and span identifiers of the innermost span when
// they are valid:
//
//	handle-request -> load-user -> db.query (trace_id=4bf9..., span_id=00f0...)
//
// An empty snapshot renders as the empty string.
func (t Trace) String() string {
	if len(t.frames) == 0 {
		return ""
	}

	names := make([]string, len(t.frames))
	for i, frame := range t.frames {
		names[i] = frame.Name
	}
	rendered := strings.Join(names, " -> ")

	innermost := t.frames[len(t.frames)-1].SpanContext
	if innermost.IsValid() {
		rendered += " (trace_id=" + innermost.TraceID().String() +
			", span_id=" + innermost.SpanID().String() + ")"
	}

	return rendered
}
