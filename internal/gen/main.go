// Command gen emits seq_gen.go: the fixed-arity sequencing combinators and
// their tuple output types, for arities 2 through 21.
//
// The per-arity code is entirely mechanical, so it is generated rather than
// hand-duplicated. Run via `go generate ./...` from the module root.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 21

var words = map[int]string{
	2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
	7: "seven", 8: "eight", 9: "nine", 10: "ten", 11: "eleven",
	12: "twelve", 13: "thirteen", 14: "fourteen", 15: "fifteen",
	16: "sixteen", 17: "seventeen", 18: "eighteen", 19: "nineteen",
	20: "twenty", 21: "twenty-one",
}

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by internal/gen; DO NOT EDIT.\n\npackage parsefn\n")

	for n := 2; n <= maxArity; n++ {
		writeTuple(&buf, n)
		writeSeq(&buf, n)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gen: formatting output: %v", err)
	}
	if err := os.WriteFile("seq_gen.go", src, 0o644); err != nil {
		log.Fatalf("gen: %v", err)
	}
}

// typeParams renders "O1, O2, ..., On".
func typeParams(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = outParam(i)
	}
	return strings.Join(ps, ", ")
}

func writeTuple(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// Tuple%d is the output of Seq%d: the values of %s parsers applied in order.\n", n, n, words[n])
	fmt.Fprintf(buf, "type Tuple%d[%s any] struct {\n", n, typeParams(n))
	for i := 0; i < n; i++ {
		fmt.Fprintf(buf, "\t%s %s\n", field(i), outParam(i))
	}
	buf.WriteString("}\n")
}

func writeSeq(buf *bytes.Buffer, n int) {
	tuple := fmt.Sprintf("Tuple%d[%s]", n, typeParams(n))

	args := make([]string, n)
	for i := range args {
		args[i] = fmt.Sprintf("%s Parser[I, %s, E]", parserArg(i), outParam(i))
	}

	fmt.Fprintf(buf, "\n// Seq%d applies %s parsers in order, each consuming from the remaining\n", n, words[n])
	fmt.Fprintf(buf, "// input of the one before it, and produces their values as a Tuple%d.\n", n)
	buf.WriteString("//\n")
	buf.WriteString("// The first parser to fail aborts the sequence and its failure signal is\n")
	buf.WriteString("// propagated untouched; later parsers are never run.\n")
	fmt.Fprintf(buf, "func Seq%d[I, %s, E any](%s) Parser[I, %s, E] {\n", n, typeParams(n), strings.Join(args, ", "), tuple)
	fmt.Fprintf(buf, "\treturn func(input I) (I, %s, *Err[E]) {\n", tuple)
	fmt.Fprintf(buf, "\t\tvar out %s\n", tuple)
	for i := 0; i < n; i++ {
		src := "rest"
		if i == 0 {
			src = "input"
		}
		fmt.Fprintf(buf, "\t\trest, %s, err := %s.Parse(%s)\n", value(i), parserArg(i), src)
		buf.WriteString("\t\tif err != nil {\n\t\t\treturn input, out, err\n\t\t}\n")
		fmt.Fprintf(buf, "\t\tout.%s = %s\n", field(i), value(i))
	}
	buf.WriteString("\t\treturn rest, out, nil\n\t}\n}\n")
}

// outParam names the i-th output type parameter.
func outParam(i int) string {
	return fmt.Sprintf("O%d", i+1)
}

// field names the i-th tuple field.
func field(i int) string {
	return fmt.Sprintf("V%d", i+1)
}

// value names the i-th parsed value variable.
func value(i int) string {
	return fmt.Sprintf("v%d", i+1)
}

// parserArg names the i-th parser parameter.
func parserArg(i int) string {
	return fmt.Sprintf("p%d", i+1)
}
