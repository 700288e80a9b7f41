package parsefn

import "fmt"

// errKind discriminates the three cases of Err.
type errKind uint8

const (
	incomplete errKind = iota
	recoverable
	unrecoverable
)

// Err is the failure signal of a parse: a closed three-way sum over
//
//   - Incomplete: more input is needed before the parser can decide.
//     Carries a Needed size hint. Not an error in itself; a streaming
//     caller feeds more data and retries.
//   - Error: this parser did not match, but the mismatch is recoverable —
//     an alternative branch (see Or) may still succeed.
//   - Failure: the grammar committed to this branch and it cannot be
//     completed. Composition must abort without trying alternatives.
//
// A nil *Err means success. Err values are only ever constructed and
// inspected, never mutated: combinators pass Incomplete and Failure through
// untouched, and only Or inspects or merges the Error case.
//
// E is the error-domain payload carried by the Error and Failure cases.
// *Err also satisfies the standard error interface for display purposes.
type Err[E any] struct {
	kind   errKind
	needed Needed
	cause  E
}

// Incomplete signals that the input ended before the parser could decide,
// with a hint for how much more is needed.
func Incomplete[E any](n Needed) *Err[E] {
	return &Err[E]{kind: incomplete, needed: n}
}

// Error signals a recoverable mismatch carrying the given error-domain
// payload. Alternative branches may still be tried.
func Error[E any](cause E) *Err[E] {
	return &Err[E]{kind: recoverable, cause: cause}
}

// Failure signals an unrecoverable mismatch carrying the given error-domain
// payload. No alternative branch may be tried.
func Failure[E any](cause E) *Err[E] {
	return &Err[E]{kind: unrecoverable, cause: cause}
}

// IsIncomplete reports whether the signal asks for more input.
func (e *Err[E]) IsIncomplete() bool {
	return e.kind == incomplete
}

// IsError reports whether the signal is a recoverable mismatch.
func (e *Err[E]) IsError() bool {
	return e.kind == recoverable
}

// IsFailure reports whether the signal is an unrecoverable mismatch.
func (e *Err[E]) IsFailure() bool {
	return e.kind == unrecoverable
}

// Needed returns the size hint of an Incomplete signal. For the Error and
// Failure cases it returns the unknown hint.
func (e *Err[E]) Needed() Needed {
	return e.needed
}

// Cause returns the error-domain payload of an Error or Failure signal.
// For Incomplete it returns the zero value; the hint is in Needed.
func (e *Err[E]) Cause() E {
	return e.cause
}

// Error implements the standard error interface, rendering the signal for
// diagnostics. Programmatic consumers should use the predicates and Cause
// instead of parsing this string.
func (e *Err[E]) Error() string {
	switch e.kind {
	case incomplete:
		return fmt.Sprintf("parsing requires %s", e.needed)
	case unrecoverable:
		return fmt.Sprintf("parsing failure: %v", e.cause)
	default:
		return fmt.Sprintf("parsing error: %v", e.cause)
	}
}

// MapErr transforms the payload of an Error or Failure signal through fn,
// preserving the case. An Incomplete signal is re-tagged with its hint
// untouched, and fn is not called. A nil signal maps to nil.
//
// E and E2 may be the same type (transforming within one error domain) or
// different (converting between domains); both uses share this function.
func MapErr[E, E2 any](e *Err[E], fn func(E) E2) *Err[E2] {
	if e == nil {
		return nil
	}
	if e.kind == incomplete {
		return &Err[E2]{kind: incomplete, needed: e.needed}
	}
	return &Err[E2]{kind: e.kind, cause: fn(e.cause)}
}

// Finish collapses the streaming three-way failure model into a two-way
// result for callers whose input is known to be complete. Success passes
// through with a nil error pointer; Error and Failure both collapse to a
// pointer to their payload, since the distinction between them only matters
// to composing combinators, not to a terminal caller.
//
// Finish must only be called when the input is known to be complete.
// Receiving Incomplete there is a bug in the caller, not a recoverable
// condition, so Finish panics on it.
func Finish[I, O, E any](rest I, out O, e *Err[E]) (I, O, *E) {
	if e == nil {
		return rest, out, nil
	}
	if e.kind == incomplete {
		panic(fmt.Sprintf("parsefn.Finish: parser returned Incomplete (%s); Finish must only be used on complete input", e.needed))
	}
	cause := e.cause
	return rest, out, &cause
}
