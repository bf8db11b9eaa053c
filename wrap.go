package ctxerr

// Wrap decorates inner with the current logical context and a backtrace
// captured at the call site. It is shorthand for
//
//	New(inner).WithBacktrace(backtrace.Capture())
//
// and produces exactly the same wrapper state as the manual two-step.
// As with New, inner must be non-nil.
func Wrap[T error](inner T) *Error[T] {
	return New(inner).WithBacktrace(captureBacktrace())
}

// Fail behaves like Wrap but yields the decorated wrapper as a plain error,
// so a fallible operation can decorate and return in a single expression:
//
//	if err := store.Save(ctx, user); err != nil {
//		return ctxerr.Fail(err)
//	}
func Fail[T error](inner T) error {
	return Wrap(inner)
}
