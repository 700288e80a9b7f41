package parsefn

import "fmt"

// Kind tags the failure kind recorded in an error-domain value: which
// operation rejected the input.
//
// Kinds are stringly-typed so that leaf-parser libraries and grammars can
// mint their own without a central enum; this package reserves no semantics
// beyond the two kinds its own combinators produce.
type Kind string

// Kinds produced by combinators in this package.
const (
	// KindMapRes tags the error synthesized when a MapRes mapping fails.
	KindMapRes Kind = "MapRes"

	// KindMapOpt tags the error synthesized when a MapOpt mapping
	// produces no value.
	KindMapOpt Kind = "MapOpt"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseError is the capability contract an error-domain type must satisfy
// to be usable as the E parameter of the error-constructing combinators
// (MapRes, MapOpt) and of Or.
//
// The two constructors are methods so that generic code can call them on
// the zero value of E; implementations must therefore be callable on their
// zero value. All three methods must be non-mutating and return a new
// value.
//
//   - FromKind builds an error recording that the operation tagged kind
//     rejected the input at the given position.
//   - FromExternal is FromKind plus an external cause, used when bridging a
//     foreign fallible computation into the parse. Implementations may
//     record or discard the cause.
//   - Or combines the receiver with the error of a second alternative
//     branch when both branches fail recoverably. Or is called
//     first-branch-first: e1.Or(e2) with e1 from the branch tried first.
type ParseError[I, E any] interface {
	FromKind(input I, kind Kind) E
	FromExternal(input I, kind Kind, cause error) E
	Or(other E) E
}

// SimpleError is the minimal ParseError implementation: it records only the
// input position and the failure kind. It is sufficient for most grammars;
// error domains needing richer context (accumulated positions, messages,
// external causes) implement ParseError themselves.
type SimpleError[I any] struct {
	// Input is the position at which the failure was recorded.
	Input I

	// Kind tags the operation that rejected the input.
	Kind Kind
}

// FromKind implements ParseError.
func (SimpleError[I]) FromKind(input I, kind Kind) SimpleError[I] {
	return SimpleError[I]{Input: input, Kind: kind}
}

// FromExternal implements ParseError. The external cause is discarded;
// only the position and kind are kept.
func (SimpleError[I]) FromExternal(input I, kind Kind, _ error) SimpleError[I] {
	return SimpleError[I]{Input: input, Kind: kind}
}

// Or implements ParseError by keeping the error of the branch tried last.
func (SimpleError[I]) Or(other SimpleError[I]) SimpleError[I] {
	return other
}

// Error implements the standard error interface.
func (e SimpleError[I]) Error() string {
	return fmt.Sprintf("%s at %v", e.Kind, e.Input)
}
