package parsefn_test

import (
	"fmt"
	"strconv"

	"parsefn"
)

type Color struct {
	R, G, B uint8
}

// Example parses a hexadecimal color string into its channels, showing how
// leaf parsers, fallible mapping, and fixed-arity sequencing compose.
func Example() {
	// A leaf parser taking exactly two hexadecimal digits.
	var hexPair parsefn.Parser[string, string, serr] = func(in string) (string, string, *parsefn.Err[serr]) {
		if len(in) < 2 {
			return in, "", parsefn.Incomplete[serr](parsefn.NewNeeded(uint(2 - len(in))))
		}
		for i := 0; i < 2; i++ {
			c := in[i]
			if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
				var e serr
				return in, "", parsefn.Error(e.FromKind(in, parsefn.Kind("HexDigit")))
			}
		}
		return in[2:], in[:2], nil
	}

	// One color channel: two hex digits through a fallible conversion.
	channel := parsefn.MapRes(hexPair, func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	})

	// '#' then three channels, in order, collapsed into a Color.
	color := parsefn.Map(
		parsefn.Seq4(char('#'), channel, channel, channel),
		func(t parsefn.Tuple4[byte, uint8, uint8, uint8]) Color {
			return Color{R: t.V2, G: t.V3, B: t.V4}
		})

	// The input is known to be complete, so collapse the three-way
	// failure model with Finish.
	rest, c, err := color.Parse("#2F14DF")
	rest, c, perr := parsefn.Finish(rest, c, err)

	fmt.Println(c.R, c.G, c.B, rest == "", perr == nil)
	// Output: 47 20 223 true true
}
