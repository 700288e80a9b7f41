package parsefn_test

import (
	"errors"
	"testing"

	"parsefn"

	"github.com/stretchr/testify/require"
)

func TestSimpleError_FromKind(t *testing.T) {
	var e serr

	got := e.FromKind("input", kindChar)

	require.Equal(t, serr{Input: "input", Kind: kindChar}, got)
}

func TestSimpleError_FromExternalDiscardsCause(t *testing.T) {
	var e serr

	got := e.FromExternal("input", parsefn.KindMapRes, errors.New("out of range"))

	// only position and kind survive
	require.Equal(t, serr{Input: "input", Kind: parsefn.KindMapRes}, got)
}

func TestSimpleError_OrKeepsLastBranch(t *testing.T) {
	first := serr{Input: "abc", Kind: kindChar}
	second := serr{Input: "abc", Kind: kindDigit}

	require.Equal(t, second, first.Or(second))
}

func TestSimpleError_Error(t *testing.T) {
	e := serr{Input: "xyz", Kind: kindChar}

	require.Equal(t, "Char at xyz", e.Error())
}

func TestKind_OpenSet(t *testing.T) {
	// grammars mint their own kinds; the package reserves only the two
	// produced by its combinators
	custom := parsefn.Kind("Hexadecimal")

	require.Equal(t, "Hexadecimal", custom.String())
	require.Equal(t, "MapRes", parsefn.KindMapRes.String())
	require.Equal(t, "MapOpt", parsefn.KindMapOpt.String())
}
