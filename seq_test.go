package parsefn_test

import (
	"strconv"
	"testing"

	"parsefn"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSeq3_AppliesLeftToRight(t *testing.T) {
	p := parsefn.Seq3(char('a'), char('b'), char('c'))

	rest, out, err := p.Parse("abcd")

	require.Nil(t, err)
	require.Equal(t, "d", rest)

	want := parsefn.Tuple3[byte, byte, byte]{V1: 'a', V2: 'b', V3: 'c'}
	require.Empty(t, cmp.Diff(want, out))
}

func TestSeq3_FirstFailingStepAborts(t *testing.T) {
	calls := 0
	p := parsefn.Seq3(char('a'), char('b'), counting(char('c'), &calls))

	// the third matcher rejects "x"; its error is positioned there
	_, _, err := p.Parse("abx")

	require.True(t, err.IsError())
	require.Equal(t, kindChar, err.Cause().Kind)
	require.Equal(t, "x", err.Cause().Input)
	require.Equal(t, 1, calls)

	// the second matcher rejects before the third is ever run
	calls = 0
	_, _, err = p.Parse("axc")
	require.True(t, err.IsError())
	require.Equal(t, "xc", err.Cause().Input)
	require.Zero(t, calls)
}

func TestSeq3_IncompletePropagates(t *testing.T) {
	p := parsefn.Seq3(char('a'), char('b'), char('c'))

	_, _, err := p.Parse("ab")

	require.True(t, err.IsIncomplete())
	require.Equal(t, parsefn.NewNeeded(1), err.Needed())
}

func TestSeq2_MatchesAnd(t *testing.T) {
	s := parsefn.Seq2(char('a'), char('b'))
	a := parsefn.And(char('a'), char('b'))

	for _, input := range []string{"abc", "axc", "a", ""} {
		sRest, sOut, sErr := s.Parse(input)
		aRest, aOut, aErr := a.Parse(input)

		require.Equal(t, sRest, aRest, "input %q", input)
		require.Equal(t, sOut, aOut, "input %q", input)
		require.Equal(t, sErr, aErr, "input %q", input)
	}
}

func TestSeq5_IndependentTypes(t *testing.T) {
	// each step produces its own type; the tuple carries all of them
	number := parsefn.MapRes(digits, strconv.Atoi)
	p := parsefn.Seq5(char('('), number, char(','), number, char(')'))

	rest, out, err := p.Parse("(12,34)!")

	require.Nil(t, err)
	require.Equal(t, "!", rest)

	want := parsefn.Tuple5[byte, int, byte, int, byte]{
		V1: '(', V2: 12, V3: ',', V4: 34, V5: ')',
	}
	require.Empty(t, cmp.Diff(want, out))
}

func TestSeq21_FullArity(t *testing.T) {
	p := parsefn.Seq21(
		char('a'), char('b'), char('c'), char('d'), char('e'), char('f'),
		char('g'), char('h'), char('i'), char('j'), char('k'), char('l'),
		char('m'), char('n'), char('o'), char('p'), char('q'), char('r'),
		char('s'), char('t'), char('u'),
	)

	rest, out, err := p.Parse("abcdefghijklmnopqrstu!")

	require.Nil(t, err)
	require.Equal(t, "!", rest)
	require.Equal(t, byte('a'), out.V1)
	require.Equal(t, byte('k'), out.V11)
	require.Equal(t, byte('u'), out.V21)

	_, _, err = p.Parse("abcdefghij")
	require.True(t, err.IsIncomplete())
}
