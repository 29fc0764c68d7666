// Command polyeq reduces a single-variable polynomial equation to its
// canonical "= 0" form and prints the ordered coefficient list.
//
// Usage:
//
//	polyeq "5 + 4*X + X^2 = X^2"
//
// On success it prints the original equation, the reduced form and the
// coefficients (highest exponent first) and exits 0. A usage violation
// or any parse failure prints a message and exits 1.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/polyeq/equation"
	"github.com/katalvlaran/polyeq/reduce"
)

const (
	usageLine   = `Usage: polyeq "<equation>"`
	exampleLine = `Example: polyeq "5 + 4*X + X^2 = X^2"`
)

// run executes the pipeline for the given arguments and returns the
// process exit code. All output, diagnostics included, goes to out.
func run(args []string, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(out, usageLine)
		fmt.Fprintln(out, exampleLine)

		return 1
	}

	eq, err := equation.Parse(args[0], nil)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)

		return 1
	}
	rf := reduce.Reduce(eq)

	fmt.Fprintf(out, "Original equation: %s\n", args[0])
	fmt.Fprintf(out, "Reduced form: %s\n", rf)
	fmt.Fprintf(out, "Coefficients: %s\n", strings.Join(rf.CoefficientStrings(), ", "))

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
