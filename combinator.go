package parsefn

type (

	// MapFunc is a pure, infallible mapping function used by Map that
	// transforms a value of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may fail with an ordinary
	// error, used by MapRes to bridge foreign fallible computations into
	// a parse.
	TryMapFunc[In, Out any] func(in In) (Out, error)

	// OptMapFunc is a mapping function that may produce no value, used by
	// MapOpt. The boolean reports whether a value was produced.
	OptMapFunc[In, Out any] func(in In) (Out, bool)

	// BindFunc constructs a new parser from a parsed value, used by
	// FlatMap. The second parse step may depend on data extracted by the
	// first.
	BindFunc[I, In, Out, E any] func(in In) Parser[I, Out, E]
)

// Map runs p and, on success, transforms its value using fn, keeping the
// remaining input unchanged.
//
// Failure signals from p are propagated untouched.
func Map[I, In, Out, E any](p Parser[I, In, E], fn MapFunc[In, Out]) Parser[I, Out, E] {
	return func(input I) (I, Out, *Err[E]) {
		rest, out, err := p.Parse(input)
		if err != nil {
			var zero Out
			return input, zero, err
		}
		return rest, fn(out), nil
	}
}

// MapRes runs p and, on success, transforms its value using fn, which may
// itself fail. A failure of fn becomes a recoverable Error constructed via
// FromExternal at the input position p started from, not the position p
// advanced to, so the error reports the whole region the mapping covered.
//
// Failure signals from p are propagated untouched.
func MapRes[I, In, Out any, E ParseError[I, E]](p Parser[I, In, E], fn TryMapFunc[In, Out]) Parser[I, Out, E] {
	return func(input I) (I, Out, *Err[E]) {
		var zero Out
		rest, out, err := p.Parse(input)
		if err != nil {
			return input, zero, err
		}
		mapped, mapErr := fn(out)
		if mapErr != nil {
			var e E
			return input, zero, Error(e.FromExternal(input, KindMapRes, mapErr))
		}
		return rest, mapped, nil
	}
}

// MapOpt runs p and, on success, transforms its value using fn, which may
// produce no value. Absence becomes a recoverable Error constructed via
// FromKind at the input position p started from.
//
// Failure signals from p are propagated untouched.
func MapOpt[I, In, Out any, E ParseError[I, E]](p Parser[I, In, E], fn OptMapFunc[In, Out]) Parser[I, Out, E] {
	return func(input I) (I, Out, *Err[E]) {
		var zero Out
		rest, out, err := p.Parse(input)
		if err != nil {
			return input, zero, err
		}
		mapped, ok := fn(out)
		if !ok {
			var e E
			return input, zero, Error(e.FromKind(input, KindMapOpt))
		}
		return rest, mapped, nil
	}
}

// FlatMap runs p and, on success, applies fn to its value to construct a
// second parser, which is immediately run on p's remaining input. This is
// the monadic bind: the second step may depend on data extracted by the
// first, such as a length prefix deciding how much to read next.
//
// Failure signals from p are propagated untouched.
func FlatMap[I, In, Out, E any](p Parser[I, In, E], fn BindFunc[I, In, Out, E]) Parser[I, Out, E] {
	return func(input I) (I, Out, *Err[E]) {
		rest, out, err := p.Parse(input)
		if err != nil {
			var zero Out
			return input, zero, err
		}
		return fn(out).Parse(rest)
	}
}

// AndThen runs outer and, on success, treats its produced value as a fresh
// input for inner. The remaining input of the whole composition is outer's
// remaining input; whatever inner leaves unconsumed of the produced value
// is discarded. AndThen parses a sub-structure out of an already-isolated
// chunk, such as the payload of a framed record.
//
// Failure signals from either parser are propagated untouched.
func AndThen[I, M, O, E any](outer Parser[I, M, E], inner Parser[M, O, E]) Parser[I, O, E] {
	return func(input I) (I, O, *Err[E]) {
		var zero O
		rest, mid, err := outer.Parse(input)
		if err != nil {
			return input, zero, err
		}
		_, out, err := inner.Parse(mid)
		if err != nil {
			return input, zero, err
		}
		return rest, out, nil
	}
}

// And runs p and then q on p's remaining input, producing both values as a
// Tuple2. The first parser to fail aborts the pair and its failure signal
// is propagated untouched; q is never run after p fails.
//
// And is equivalent to calling Seq2(p, q).
func And[I, A, B, E any](p Parser[I, A, E], q Parser[I, B, E]) Parser[I, Tuple2[A, B], E] {
	return Seq2(p, q)
}

// Or runs p and returns its outcome unless it is a recoverable Error: a
// success, an Incomplete, or a committed Failure from p is final and q is
// never run. Only on a recoverable Error is q tried, on the original
// input. If q also fails recoverably, the two payloads are merged with
// e1.Or(e2), first branch first, into a single Error; any other outcome
// from q is returned as-is.
//
// Or duplicates the original input for the second attempt, so the input
// type must honor the O(1)-duplication contract documented on Parser.
func Or[I, O any, E ParseError[I, E]](p, q Parser[I, O, E]) Parser[I, O, E] {
	return func(input I) (I, O, *Err[E]) {
		rest, out, err := p.Parse(input)
		if err == nil || !err.IsError() {
			return rest, out, err
		}
		rest2, out2, err2 := q.Parse(input)
		if err2 != nil && err2.IsError() {
			var zero O
			return input, zero, Error(err.Cause().Or(err2.Cause()))
		}
		return rest2, out2, err2
	}
}

// Into re-tags p's produced value and error payload into different types
// through the given conversion functions. Incomplete signals pass through
// unchanged, since the size hint is type-agnostic.
func Into[I, In, Out, E, E2 any](p Parser[I, In, E], outConv MapFunc[In, Out], errConv MapFunc[E, E2]) Parser[I, Out, E2] {
	return func(input I) (I, Out, *Err[E2]) {
		rest, out, err := p.Parse(input)
		if err != nil {
			var zero Out
			return input, zero, MapErr(err, errConv)
		}
		return rest, outConv(out), nil
	}
}
