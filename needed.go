package parsefn

import "fmt"

// Needed is the size hint carried by an Incomplete signal. It reports how
// much more input a parser needs before it can decide between success and
// failure: either an exact number of units or an unknown amount.
//
// The zero value is the unknown hint. A known hint is always strictly
// positive; NewNeeded and Map normalize a size of zero back to unknown.
//
// Needed values are comparable, so two hints can be tested with ==.
type Needed struct {
	size uint
}

// NewNeeded returns a hint for exactly n more units of input. A size of
// zero carries no information and yields the unknown hint instead.
func NewNeeded(n uint) Needed {
	return Needed{size: n}
}

// IsKnown reports whether the hint carries an exact size.
func (n Needed) IsKnown() bool {
	return n.size != 0
}

// Size returns the exact size of the hint and whether one is known.
func (n Needed) Size() (uint, bool) {
	return n.size, n.size != 0
}

// Map transforms a known size through fn and normalizes the result, so
// mapping to zero yields the unknown hint. The unknown hint is returned
// unchanged without calling fn.
func (n Needed) Map(fn func(uint) uint) Needed {
	if n.size == 0 {
		return n
	}
	return NewNeeded(fn(n.size))
}

// String implements fmt.Stringer.
func (n Needed) String() string {
	if n.size == 0 {
		return "an unknown amount of data"
	}
	return fmt.Sprintf("%d more bytes", n.size)
}
