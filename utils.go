package ctxerr

import (
	"errors"

	"github.com/aalemi-dev/ctxerr/backtrace"
	"github.com/aalemi-dev/ctxerr/spantrace"
)

// spanTraceCarrier and backtraceCarrier let the lookup helpers see any
// Error[T] instantiation without naming the type argument.
type spanTraceCarrier interface {
	SpanTrace() spantrace.Trace
}

type backtraceCarrier interface {
	Backtrace() (backtrace.Trace, bool)
}

// SpanTraceFrom returns the logical context attached to err or to any error
// it wraps, walking the chain outermost first.
func SpanTraceFrom(err error) (spantrace.Trace, bool) {
	for err != nil {
		if carrier, ok := err.(spanTraceCarrier); ok {
			return carrier.SpanTrace(), true
		}
		err = errors.Unwrap(err)
	}
	return spantrace.Trace{}, false
}

// BacktraceFrom returns the backtrace attached to err or to any error it
// wraps. Wrappers without an attached backtrace are skipped, so the first
// attached snapshot in the chain wins.
func BacktraceFrom(err error) (backtrace.Trace, bool) {
	for err != nil {
		if carrier, ok := err.(backtraceCarrier); ok {
			if bt, ok := carrier.Backtrace(); ok {
				return bt, true
			}
		}
		err = errors.Unwrap(err)
	}
	return backtrace.Trace{}, false
}
