package ctxerr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/ctxerr/backtrace"
	"github.com/aalemi-dev/ctxerr/spantrace"
)

func TestWrap_AttachesBacktrace(t *testing.T) {
	t.Parallel()

	e := Wrap(errors.New("boom"))

	bt, ok := e.Backtrace()
	require.True(t, ok)
	assert.False(t, bt.Empty())
	assert.Contains(t, e.Error(), "Backtrace: ")
}

func TestWrap_EquivalentToManualConstruction(t *testing.T) {
	t.Parallel()

	spantrace.Push("ingest", trace.SpanContext{})
	defer spantrace.Pop()

	inner := errors.New("checksum mismatch")

	wrapped := Wrap(inner)
	manual := New(inner).WithBacktrace(backtrace.Capture())

	assert.Equal(t, manual.SpanTrace().String(), wrapped.SpanTrace().String())
	assert.Same(t, inner, errors.Unwrap(wrapped))
	assert.Same(t, inner, errors.Unwrap(manual))

	_, wrappedHas := wrapped.Backtrace()
	_, manualHas := manual.Backtrace()
	assert.True(t, wrappedHas)
	assert.True(t, manualHas)
}

func TestWrap_BacktraceReflectsCallSite(t *testing.T) {
	t.Parallel()

	e := Wrap(errors.New("boom"))

	bt, ok := e.Backtrace()
	require.True(t, ok)
	assert.Contains(t, bt.String(), "TestWrap_BacktraceReflectsCallSite")
}

func TestFail_YieldsPlainError(t *testing.T) {
	t.Parallel()

	inner := errors.New("row not found")
	err := Fail(inner)

	require.Error(t, err)
	assert.True(t, errors.Is(err, inner))

	var wrapped *Error[error]
	require.True(t, errors.As(err, &wrapped))

	_, ok := wrapped.Backtrace()
	assert.True(t, ok)
}

func TestFail_ObservationallyEquivalentToWrap(t *testing.T) {
	t.Parallel()

	spantrace.Push("persist", trace.SpanContext{})
	defer spantrace.Pop()

	inner := errors.New("disk full")

	failed := Fail(inner)
	wrapped := Wrap(inner)

	st, ok := SpanTraceFrom(failed)
	require.True(t, ok)
	assert.Equal(t, wrapped.SpanTrace().String(), st.String())
	assert.Equal(t, 1, strings.Count(failed.Error(), "Backtrace: "))
}

func TestSpanTraceFrom_SeesThroughOuterWrapping(t *testing.T) {
	t.Parallel()

	spantrace.Push("export", trace.SpanContext{})
	defer spantrace.Pop()

	err := Fail(errors.New("timeout"))

	st, ok := SpanTraceFrom(err)
	require.True(t, ok)
	assert.Equal(t, "export", st.String())
}

func TestSpanTraceFrom_PlainError(t *testing.T) {
	t.Parallel()

	_, ok := SpanTraceFrom(errors.New("plain"))
	assert.False(t, ok)

	_, ok = SpanTraceFrom(nil)
	assert.False(t, ok)
}

func TestBacktraceFrom_SkipsWrappersWithoutOne(t *testing.T) {
	t.Parallel()

	carrying := Wrap(errors.New("root"))
	outer := New[error](carrying) // no backtrace on the outer wrapper

	bt, ok := BacktraceFrom(outer)
	require.True(t, ok)
	assert.False(t, bt.Empty())

	_, ok = BacktraceFrom(New(errors.New("bare")))
	assert.False(t, ok)
}

// The capturer swap tests below mutate package-level state and therefore run
// sequentially, before any parallel test resumes.

type staticContextCapturer struct {
	trace spantrace.Trace
}

func (s staticContextCapturer) Capture() spantrace.Trace { return s.trace }

type staticBacktraceCapturer struct {
	trace backtrace.Trace
}

func (s staticBacktraceCapturer) Capture() backtrace.Trace { return s.trace }

func TestSetContextCapturer_UsedByNew(t *testing.T) {
	spantrace.Push("injected-frame", trace.SpanContext{})
	fixed := spantrace.Capture()
	spantrace.Pop()

	SetContextCapturer(staticContextCapturer{trace: fixed})
	defer SetContextCapturer(nil)

	e := New(errors.New("boom"))

	assert.Equal(t, "injected-frame", e.SpanTrace().String())
}

func TestSetBacktraceCapturer_UsedByWrap(t *testing.T) {
	SetBacktraceCapturer(staticBacktraceCapturer{}) // degraded empty capture
	defer SetBacktraceCapturer(nil)

	e := Wrap(errors.New("boom"))

	bt, ok := e.Backtrace()
	require.True(t, ok)
	// A degraded capture passes through unchanged rather than being dropped.
	assert.True(t, bt.Empty())
	assert.Contains(t, e.Error(), "Backtrace: []")
}

func TestSetCapturers_NilRestoresDefaults(t *testing.T) {
	SetContextCapturer(staticContextCapturer{})
	SetBacktraceCapturer(staticBacktraceCapturer{})
	SetContextCapturer(nil)
	SetBacktraceCapturer(nil)

	e := Wrap(errors.New("boom"))

	bt, ok := e.Backtrace()
	require.True(t, ok)
	assert.False(t, bt.Empty())
}
