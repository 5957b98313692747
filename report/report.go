package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-payback/payback/solution"
)

// Sprint formats sol as one line per edge, in emission order, using the
// CLI's transaction format: `"<from>" to "<to>": <weight>.0` (spec §6).
func Sprint(sol solution.Solution) string {
	var b strings.Builder
	for _, e := range sol.Edges() {
		fmt.Fprintf(&b, "%q to %q: %d.0\n", e.From, e.To, e.Weight)
	}

	return b.String()
}

// Fprint writes Sprint's output to w.
func Fprint(w io.Writer, sol solution.Solution) error {
	_, err := io.WriteString(w, Sprint(sol))

	return err
}

// DOT renders sol as a Graphviz digraph block on a single line, one edge
// statement per edge, with quoted identifiers:
//
//	digraph { "A" -> "D" [label="2"]; "B" -> "C" [label="1"]; }
func DOT(sol solution.Solution) string {
	var b strings.Builder
	b.WriteString("digraph {")
	for _, e := range sol.Edges() {
		fmt.Fprintf(&b, " %q -> %q [label=%q];", e.From, e.To, fmt.Sprint(e.Weight))
	}
	b.WriteString(" }")

	return b.String()
}
