package ctxerr

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/ctxerr/backtrace"
	"github.com/aalemi-dev/ctxerr/spantrace"
)

func TestNew_DisplayContainsMessage(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")
	e := New(inner)

	assert.Contains(t, e.Error(), "connection refused")
}

func TestNew_CapturesActiveSpans(t *testing.T) {
	t.Parallel()

	spantrace.Push("handle-request", trace.SpanContext{})
	defer spantrace.Pop()
	spantrace.Push("load-user", trace.SpanContext{})
	defer spantrace.Pop()

	e := New(errors.New("row not found"))

	assert.Equal(t, "handle-request -> load-user", e.SpanTrace().String())
	assert.Contains(t, e.Error(), "Context: handle-request -> load-user")
}

func TestNew_ContextReflectsRaiseSite(t *testing.T) {
	t.Parallel()

	spantrace.Push("raise-site", trace.SpanContext{})
	e := New(errors.New("boom"))
	spantrace.Pop()

	// The snapshot belongs to the moment of creation, not of observation.
	assert.Equal(t, "raise-site", e.SpanTrace().String())
}

func TestNew_NoBacktraceByDefault(t *testing.T) {
	t.Parallel()

	e := New(errors.New("boom"))

	_, ok := e.Backtrace()
	assert.False(t, ok)
	assert.NotContains(t, e.Error(), "Backtrace:")
}

func TestError_TwoLinesWithoutBacktrace(t *testing.T) {
	t.Parallel()

	spantrace.Push("open-file", trace.SpanContext{})
	defer spantrace.Pop()

	e := New(fmt.Errorf("open settings.yaml: %w", fs.ErrNotExist))

	lines := strings.Split(e.Error(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "))
	assert.Contains(t, lines[0], "file does not exist")
	assert.True(t, strings.HasPrefix(lines[1], "Context: "))
}

func TestError_ThreeLinesWithBacktrace(t *testing.T) {
	t.Parallel()

	spantrace.Push("open-file", trace.SpanContext{})
	defer spantrace.Pop()

	e := New(fmt.Errorf("open settings.yaml: %w", fs.ErrNotExist)).
		WithBacktrace(backtrace.Capture())

	lines := strings.Split(e.Error(), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "))
	assert.True(t, strings.HasPrefix(lines[1], "Context: "))
	assert.True(t, strings.HasPrefix(lines[2], "Backtrace: "))
}

func TestError_BacktraceSectionAfterContext(t *testing.T) {
	t.Parallel()

	e := New(errors.New("boom")).WithBacktrace(backtrace.Capture())
	out := e.Error()

	msgIdx := strings.Index(out, "Error: ")
	ctxIdx := strings.Index(out, "Context: ")
	btIdx := strings.Index(out, "Backtrace: ")

	require.NotEqual(t, -1, btIdx)
	assert.Less(t, msgIdx, ctxIdx)
	assert.Less(t, ctxIdx, btIdx)
}

func TestWithBacktrace_OverwritesPrevious(t *testing.T) {
	t.Parallel()

	first := backtrace.Capture()
	var second backtrace.Trace
	func() {
		second = backtrace.Capture()
	}()

	e := New(errors.New("boom")).WithBacktrace(first).WithBacktrace(second)

	bt, ok := e.Backtrace()
	require.True(t, ok)
	assert.Equal(t, second.String(), bt.String())
	// One section, not two.
	assert.Equal(t, 1, strings.Count(e.Error(), "Backtrace: "))
}

func TestUnwrap_YieldsInnerUnchanged(t *testing.T) {
	t.Parallel()

	inner := errors.New("file not found")
	e := New(inner)

	unwrapped := errors.Unwrap(e)
	require.NotNil(t, unwrapped)
	assert.Equal(t, "file not found", unwrapped.Error())
	assert.Same(t, inner, unwrapped)
}

func TestChainWalking_ErrorsIs(t *testing.T) {
	t.Parallel()

	e := New(fmt.Errorf("open settings.yaml: %w", fs.ErrNotExist))

	assert.True(t, errors.Is(e, fs.ErrNotExist))
}

func TestChainWalking_ErrorsAs(t *testing.T) {
	t.Parallel()

	inner := &fs.PathError{Op: "open", Path: "settings.yaml", Err: fs.ErrNotExist}
	e := New(inner)

	var pathErr *fs.PathError
	require.True(t, errors.As(e, &pathErr))
	assert.Equal(t, "settings.yaml", pathErr.Path)
}

func TestNew_NilInnerPanicsOnRender(t *testing.T) {
	t.Parallel()

	// New requires a non-nil inner error; a nil one surfaces as a panic
	// the first time the wrapper is rendered.
	e := New[error](nil)

	assert.Panics(t, func() { _ = e.Error() })
}

func TestError_DoesNotInspectInner(t *testing.T) {
	t.Parallel()

	inner := &countingError{msg: "counted"}
	e := New(inner)

	_ = e.Error()
	_ = e.Error()

	// The wrapper only ever asks inner for its message.
	assert.Equal(t, 2, inner.calls)
}

type countingError struct {
	msg   string
	calls int
}

func (c *countingError) Error() string {
	c.calls++
	return c.msg
}
