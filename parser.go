package parsefn

// Parser is the core capability: a value that maps one input cursor to one
// outcome. An outcome is either success (the remaining input plus the
// produced value, with a nil *Err) or a non-nil failure signal, in which
// case rest and out are unspecified and must be ignored.
//
// I is the input type, O the produced value type, and E the error domain
// carried by failure signals.
//
// Parser is a function type, so any plain function or closure of the right
// shape is a Parser by assignment, with no wrapper boilerplate:
//
//	func tag(want byte) parsefn.Parser[string, byte, parsefn.SimpleError[string]] {
//		return func(in string) (string, byte, *parsefn.Err[parsefn.SimpleError[string]]) {
//			if len(in) == 0 {
//				return in, 0, parsefn.Incomplete[parsefn.SimpleError[string]](parsefn.NewNeeded(1))
//			}
//			if in[0] != want {
//				var e parsefn.SimpleError[string]
//				return in, 0, parsefn.Error(e.FromKind(in, parsefn.Kind("Tag")))
//			}
//			return in[1:], in[0], nil
//		}
//	}
//
// A Parser may be stateless or hold captured state, but it owns that state
// exclusively: parsing is single-threaded and combinators own their inner
// parsers outright, so no synchronization is ever needed.
//
// Input contract: I must duplicate in O(1). Parsers that backtrack (Or) or
// report at a pre-call position (MapRes, MapOpt) retain the original input
// value while the inner parser advances past it; cursor-like types such as
// string or []byte copy only a header. A custom input type that copies its
// underlying data on assignment silently turns that retention into
// quadratic-time parsing and violates this contract.
type Parser[I, O, E any] func(input I) (rest I, out O, err *Err[E])

// Parse applies p to input, so that every Parser also satisfies Interface.
func (p Parser[I, O, E]) Parse(input I) (I, O, *Err[E]) {
	return p(input)
}

// Interface is the dynamic-dispatch form of the Parser capability: a
// type-erased handle for values whose underlying implementation is chosen
// at runtime. Heterogeneous parser implementations of the same [I, O, E]
// shape can be stored in one collection behind it and invoked through one
// indirection, with behavior identical to calling them directly.
//
// Every Parser is an Interface via its Parse method; FromInterface adapts
// the other direction.
type Interface[I, O, E any] interface {
	Parse(input I) (rest I, out O, err *Err[E])
}

// FromInterface adapts a dynamically-dispatched parser back into a Parser,
// forwarding each call through the interface. It is the entry point for
// struct-based parser implementations into the combinators of this
// package.
func FromInterface[I, O, E any](p Interface[I, O, E]) Parser[I, O, E] {
	return p.Parse
}
