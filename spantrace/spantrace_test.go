package spantrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// testSpanContext builds a valid SpanContext with fixed identifiers.
func testSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04},
		SpanID:     trace.SpanID{0x0a, 0x0b},
		TraceFlags: trace.FlagsSampled,
	})
}

func TestCapture_EmptyWithoutSpans(t *testing.T) {
	t.Parallel()

	tr := Capture()

	assert.True(t, tr.Empty())
	assert.Nil(t, tr.Frames())
	assert.Equal(t, "", tr.String())
}

func TestPushCapture_OutermostFirst(t *testing.T) {
	t.Parallel()

	Push("handle-request", trace.SpanContext{})
	defer Pop()
	Push("load-user", trace.SpanContext{})
	defer Pop()

	tr := Capture()

	frames := tr.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "handle-request", frames[0].Name)
	assert.Equal(t, "load-user", frames[1].Name)
}

func TestCapture_IsSnapshot(t *testing.T) {
	t.Parallel()

	Push("outer", trace.SpanContext{})
	Push("inner", trace.SpanContext{})

	tr := Capture()
	Pop()
	Pop()

	// Popping after the capture must not mutate the snapshot.
	require.Len(t, tr.Frames(), 2)
	assert.Equal(t, "outer -> inner", tr.String())
	assert.True(t, Capture().Empty())
}

func TestPop_WithoutPushIsNoOp(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, Pop)
	assert.True(t, Capture().Empty())
}

func TestCapture_GoroutineLocal(t *testing.T) {
	t.Parallel()

	Push("only-here", trace.SpanContext{})
	defer Pop()

	captured := make(chan Trace)
	go func() {
		captured <- Capture()
	}()

	other := <-captured

	assert.True(t, other.Empty(), "spans must not leak across goroutines")
	assert.False(t, Capture().Empty())
}

func TestString_WithSpanIdentifiers(t *testing.T) {
	t.Parallel()

	Push("db.query", testSpanContext())
	defer Pop()

	out := Capture().String()

	assert.Contains(t, out, "db.query")
	assert.Contains(t, out, "trace_id=01020304")
	assert.Contains(t, out, "span_id=0a0b")
}

func TestString_InvalidSpanContextOmitsIdentifiers(t *testing.T) {
	t.Parallel()

	Push("plain", trace.SpanContext{})
	defer Pop()

	out := Capture().String()

	assert.Equal(t, "plain", out)
}

func TestFrames_ReturnsCopy(t *testing.T) {
	t.Parallel()

	Push("stable", trace.SpanContext{})
	defer Pop()

	tr := Capture()
	frames := tr.Frames()
	frames[0].Name = "mutated"

	assert.Equal(t, "stable", tr.Frames()[0].Name)
}
