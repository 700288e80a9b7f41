package parsefn

// Fixed-arity sequencing: an ordered, fixed-length sequence of parsers that
// share an input and error-domain type, but produce independently-typed
// values, composes into one parser producing all values as a tuple struct.
//
// Seq2 through Seq21 and Tuple2 through Tuple21 live in seq_gen.go; the
// per-arity code is mechanical, so it is generated. Execution is strictly
// left-to-right and the first failing step aborts the whole sequence with
// its exact failure signal. No rollback is involved: nothing is mutated in
// place, earlier remaining-input values are simply discarded.

//go:generate go run ./internal/gen
