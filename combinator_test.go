package parsefn_test

import (
	"strconv"
	"testing"

	"parsefn"

	"github.com/stretchr/testify/require"
)

func TestMap_TransformsValue(t *testing.T) {
	p := parsefn.Map(char('a'), func(b byte) string {
		return string(b) + "!"
	})

	rest, out, err := p.Parse("abc")

	require.Nil(t, err)
	require.Equal(t, "bc", rest)
	require.Equal(t, "a!", out)
}

func TestMap_Fusion(t *testing.T) {
	// p.Map(g1).Map(g2) behaves identically to p.Map(g2 ∘ g1) on every input.
	g1 := func(b byte) int { return int(b) }
	g2 := func(n int) int { return n * 3 }

	chained := parsefn.Map(parsefn.Map(char('a'), g1), g2)
	fused := parsefn.Map(char('a'), func(b byte) int { return g2(g1(b)) })

	for _, input := range []string{"abc", "xbc", ""} {
		rest1, out1, err1 := chained.Parse(input)
		rest2, out2, err2 := fused.Parse(input)

		require.Equal(t, rest2, rest1, "input %q", input)
		require.Equal(t, out2, out1, "input %q", input)
		require.Equal(t, err2, err1, "input %q", input)
	}
}

func TestMap_PropagatesFailures(t *testing.T) {
	calls := 0
	p := parsefn.Map(char('a'), func(b byte) byte {
		calls++
		return b
	})

	_, _, err := p.Parse("xyz")
	require.True(t, err.IsError())
	require.Equal(t, kindChar, err.Cause().Kind)

	_, _, err = p.Parse("")
	require.True(t, err.IsIncomplete())
	require.Equal(t, parsefn.NewNeeded(1), err.Needed())

	// the mapping function never ran
	require.Zero(t, calls)
}

func TestMapRes_MapsFallibly(t *testing.T) {
	p := parsefn.MapRes(digits, strconv.Atoi)

	rest, out, err := p.Parse("123rest")

	require.Nil(t, err)
	require.Equal(t, "rest", rest)
	require.Equal(t, 123, out)
}

func TestMapRes_ErrorAtOriginalInput(t *testing.T) {
	// The inner parser consumes the digit run before the conversion
	// overflows; the synthesized error must still point at the input the
	// whole MapRes started from, not at what the digits left behind.
	p := parsefn.MapRes(digits, strconv.Atoi)

	const input = "99999999999999999999rest"
	_, _, err := p.Parse(input)

	require.True(t, err.IsError())
	require.Equal(t, parsefn.KindMapRes, err.Cause().Kind)
	require.Equal(t, input, err.Cause().Input)
}

func TestMapRes_PropagatesInnerFailure(t *testing.T) {
	calls := 0
	p := parsefn.MapRes(digits, func(string) (int, error) {
		calls++
		return 0, nil
	})

	_, _, err := p.Parse("rest")

	require.True(t, err.IsError())
	require.Equal(t, kindDigits, err.Cause().Kind)
	require.Zero(t, calls)
}

func TestMapOpt_AbsenceBecomesError(t *testing.T) {
	even := parsefn.MapOpt(digits, func(s string) (string, bool) {
		n, _ := strconv.Atoi(s)
		return s, n%2 == 0
	})

	rest, out, err := even.Parse("42rest")
	require.Nil(t, err)
	require.Equal(t, "rest", rest)
	require.Equal(t, "42", out)

	const input = "7rest"
	_, _, err = even.Parse(input)
	require.True(t, err.IsError())
	require.Equal(t, parsefn.KindMapOpt, err.Cause().Kind)
	require.Equal(t, input, err.Cause().Input)
}

func TestFlatMap_SecondStepDependsOnFirst(t *testing.T) {
	// A single digit decides how many bytes the second step takes.
	p := parsefn.FlatMap(digit, func(n byte) parsefn.Parser[string, string, serr] {
		return take(int(n - '0'))
	})

	rest, out, err := p.Parse("3abcdef")

	require.Nil(t, err)
	require.Equal(t, "abc", out)
	require.Equal(t, "def", rest)
}

func TestFlatMap_PropagatesFirstFailure(t *testing.T) {
	calls := 0
	p := parsefn.FlatMap(digit, func(n byte) parsefn.Parser[string, string, serr] {
		calls++
		return take(int(n - '0'))
	})

	_, _, err := p.Parse("xabc")

	require.True(t, err.IsError())
	require.Zero(t, calls)
}

func TestAndThen_ParsesIsolatedChunk(t *testing.T) {
	// The outer parser isolates a 3-byte chunk; the inner parser consumes
	// only its first byte. The composition keeps the outer remaining
	// input and discards whatever the inner parser left of the chunk.
	p := parsefn.AndThen(take(3), char('a'))

	rest, out, err := p.Parse("abcdef")

	require.Nil(t, err)
	require.Equal(t, byte('a'), out)
	require.Equal(t, "def", rest)
}

func TestAndThen_PropagatesInnerFailure(t *testing.T) {
	p := parsefn.AndThen(take(3), char('z'))

	_, _, err := p.Parse("abcdef")

	require.True(t, err.IsError())
	require.Equal(t, "abc", err.Cause().Input)
}

func TestAnd_PairsValues(t *testing.T) {
	p := parsefn.And(char('a'), char('b'))

	rest, out, err := p.Parse("abc")

	require.Nil(t, err)
	require.Equal(t, "c", rest)
	require.Equal(t, parsefn.Tuple2[byte, byte]{V1: 'a', V2: 'b'}, out)
}

func TestAnd_ShortCircuits(t *testing.T) {
	calls := 0
	f := char('a')
	g := counting(char('b'), &calls)

	direct := parsefn.And(f, g)

	_, _, err := direct.Parse("xbc")

	// f's failure comes through untouched and g never runs
	_, _, wantErr := f.Parse("xbc")
	require.Equal(t, wantErr, err)
	require.Zero(t, calls)
}

func TestOr_FirstSuccessWins(t *testing.T) {
	calls := 0
	p := parsefn.Or(char('a'), counting(char('b'), &calls))

	rest, out, err := p.Parse("abc")

	require.Nil(t, err)
	require.Equal(t, "bc", rest)
	require.Equal(t, byte('a'), out)
	require.Zero(t, calls)
}

func TestOr_IncompleteIsFinal(t *testing.T) {
	calls := 0
	p := parsefn.Or(char('a'), counting(char('b'), &calls))

	_, _, err := p.Parse("")

	require.True(t, err.IsIncomplete())
	require.Equal(t, parsefn.NewNeeded(1), err.Needed())
	require.Zero(t, calls)
}

func TestOr_FailureIsFinal(t *testing.T) {
	calls := 0
	p := parsefn.Or(committed("Verify"), counting(char('b'), &calls))

	_, _, err := p.Parse("bcd")

	require.True(t, err.IsFailure())
	require.Equal(t, parsefn.Kind("Verify"), err.Cause().Kind)
	require.Zero(t, calls)
}

func TestOr_SecondBranchOnError(t *testing.T) {
	p := parsefn.Or(char('a'), char('b'))

	rest, out, err := p.Parse("bcd")

	// identical to running the second branch on the original input
	wantRest, wantOut, wantErr := char('b').Parse("bcd")
	require.Equal(t, wantErr, err)
	require.Equal(t, wantRest, rest)
	require.Equal(t, wantOut, out)
}

func TestOr_MergesDoubleError(t *testing.T) {
	p := parsefn.Or(char('a'), char('b'))

	_, _, err := p.Parse("xcd")

	require.True(t, err.IsError())
	// SimpleError's Or keeps the branch tried last
	require.Equal(t, kindChar, err.Cause().Kind)
	require.Equal(t, "xcd", err.Cause().Input)
}

func TestOr_MergeIsFirstBranchFirst(t *testing.T) {
	left := tagged("left")
	right := tagged("right")

	p := parsefn.Or(left, right)

	_, _, err := p.Parse("anything")

	require.True(t, err.IsError())
	require.Equal(t, []string{"left", "right"}, err.Cause().Tags)
}

func TestInto_RetagsValueAndError(t *testing.T) {
	p := parsefn.Into(char('a'),
		func(b byte) string { return string(b) },
		func(e serr) string { return string(e.Kind) })

	rest, out, err := p.Parse("abc")
	require.Nil(t, err)
	require.Equal(t, "bc", rest)
	require.Equal(t, "a", out)

	_, _, err = p.Parse("xbc")
	require.True(t, err.IsError())
	require.Equal(t, string(kindChar), err.Cause())
}

func TestInto_IncompletePassesThrough(t *testing.T) {
	p := parsefn.Into(char('a'),
		func(b byte) string { return string(b) },
		func(e serr) string { return string(e.Kind) })

	_, _, err := p.Parse("")

	require.True(t, err.IsIncomplete())
	require.Equal(t, parsefn.NewNeeded(1), err.Needed())
}

// serr is the error domain used by the leaf helpers below.
type serr = parsefn.SimpleError[string]

const (
	kindChar   parsefn.Kind = "Char"
	kindDigit  parsefn.Kind = "Digit"
	kindDigits parsefn.Kind = "Digits"
)

// char matches one literal byte, asking for more input on empty input.
func char(want byte) parsefn.Parser[string, byte, serr] {
	return func(in string) (string, byte, *parsefn.Err[serr]) {
		if len(in) == 0 {
			return in, 0, parsefn.Incomplete[serr](parsefn.NewNeeded(1))
		}
		if in[0] != want {
			var e serr
			return in, 0, parsefn.Error(e.FromKind(in, kindChar))
		}
		return in[1:], in[0], nil
	}
}

// digit matches one ASCII digit.
var digit parsefn.Parser[string, byte, serr] = func(in string) (string, byte, *parsefn.Err[serr]) {
	if len(in) == 0 {
		return in, 0, parsefn.Incomplete[serr](parsefn.NewNeeded(1))
	}
	if in[0] < '0' || in[0] > '9' {
		var e serr
		return in, 0, parsefn.Error(e.FromKind(in, kindDigit))
	}
	return in[1:], in[0], nil
}

// digits matches a non-empty run of ASCII digits.
var digits parsefn.Parser[string, string, serr] = func(in string) (string, string, *parsefn.Err[serr]) {
	i := 0
	for i < len(in) && in[i] >= '0' && in[i] <= '9' {
		i++
	}
	if i == 0 {
		var e serr
		return in, "", parsefn.Error(e.FromKind(in, kindDigits))
	}
	return in[i:], in[:i], nil
}

// take consumes exactly n bytes.
func take(n int) parsefn.Parser[string, string, serr] {
	return func(in string) (string, string, *parsefn.Err[serr]) {
		if len(in) < n {
			return in, "", parsefn.Incomplete[serr](parsefn.NewNeeded(uint(n - len(in))))
		}
		return in[n:], in[:n], nil
	}
}

// committed always signals an unrecoverable Failure with the given kind.
func committed(kind parsefn.Kind) parsefn.Parser[string, byte, serr] {
	return func(in string) (string, byte, *parsefn.Err[serr]) {
		var e serr
		return in, 0, parsefn.Failure(e.FromKind(in, kind))
	}
}

// counting wraps p and increments n on every invocation.
func counting[O any](p parsefn.Parser[string, O, serr], n *int) parsefn.Parser[string, O, serr] {
	return func(in string) (string, O, *parsefn.Err[serr]) {
		*n++
		return p.Parse(in)
	}
}

// tagErr records the merge order of Or by accumulating branch tags.
type tagErr struct {
	Tags []string
}

func (tagErr) FromKind(_ string, kind parsefn.Kind) tagErr {
	return tagErr{Tags: []string{string(kind)}}
}

func (tagErr) FromExternal(_ string, kind parsefn.Kind, _ error) tagErr {
	return tagErr{Tags: []string{string(kind)}}
}

func (e tagErr) Or(other tagErr) tagErr {
	merged := make([]string, 0, len(e.Tags)+len(other.Tags))
	merged = append(merged, e.Tags...)
	return tagErr{Tags: append(merged, other.Tags...)}
}

// tagged always signals a recoverable Error tagged with the given kind.
func tagged(kind parsefn.Kind) parsefn.Parser[string, byte, tagErr] {
	return func(in string) (string, byte, *parsefn.Err[tagErr]) {
		var e tagErr
		return in, 0, parsefn.Error(e.FromKind(in, kind))
	}
}
