/*
Package parsefn provides a generic parser-combinator core: a small set of
composition operators that build large parsers out of small ones through
plain function application, without copying input and without per-step
buffering.

The package is built around the Parser capability. A Parser[I, O, E] maps
one input cursor to one outcome: either success (the remaining input and
a produced value) or a failure signal. Parser is itself a function type,
so any function or closure of the right shape is a Parser by plain
assignment, with no wrapper boilerplate; the Interface and FromInterface
pair provides the type-erased handle for heterogeneous, runtime-selected
parsers.

Failure is a closed three-way model rather than a boolean:

  - Incomplete asks for more input and carries a Needed size hint. A
    streaming caller feeds more data and retries; it is not an error.
  - Error is a recoverable mismatch: this parser did not match, but an
    alternative branch may. Or is the only combinator that inspects it.
  - Failure is a committed abort: no alternative may be tried, and every
    combinator propagates it untouched to the top.

All combinators (Map, MapRes, MapOpt, FlatMap, AndThen, And, Or, Into) are
package-level functions, each returning a new Parser that owns its inner
parsers outright. Fixed-arity sequences of two to twenty-one
independently-typed parsers compose through Seq2..Seq21 into a single
parser producing a tuple of all values.

Error domains are pluggable: any type implementing the ParseError contract
(construct from a position and kind, construct from an external error, and
combine two alternatives) can carry failure payloads. SimpleError is the
bundled minimal implementation.

Example of a small grammar, parsing "#2F14DF" into its color channels:

	// A fallible conversion turns two hex digits into one channel.
	channel := parsefn.MapRes(hexPair, func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	})

	// '#' then three channels, in order.
	p := parsefn.Seq4(tag('#'), channel, channel, channel)

	color := parsefn.Map(p, func(t parsefn.Tuple4[byte, uint8, uint8, uint8]) Color {
		return Color{R: t.V2, G: t.V3, B: t.V4}
	})

	rest, c, err := color.Parse("#2F14DF")

Callers whose input is known to be complete collapse the three-way model
into a two-way result with Finish; streaming callers instead check
IsIncomplete and retry with more data.

Parsing is single-threaded and synchronous: every Parse call is a pure,
immediately-returning function of its input, and composition is ordinary
call-stack recursion bounded by grammar nesting depth. Input types must
duplicate in O(1) — see the contract on Parser.
*/
package parsefn
