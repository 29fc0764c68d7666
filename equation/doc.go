// Package equation splits a raw equation string into its two sides
// and each side into signed term substrings, producing an Equation of
// parsed terms.
//
// 🚀 What does the splitter do?
//
//	Given "  -4X^2 + 6*X = 2/4 + 5X ", it
//	  1. splits on '=' (exactly one is required),
//	  2. strips all whitespace from each side,
//	  3. scans each side left-to-right, flushing the current term
//	     whenever '+' or '-' appears while a term is already open,
//	  4. hands every retained substring to term.Parse.
//
//	The "already open" condition is what keeps a leading sign glued to
//	its term: "-4X^2+6*X" yields "-4X^2" and "+6*X", never an empty
//	first term. The scan is a stateful character walk on purpose — a
//	regexp split cannot carry the buffer-empty condition across
//	characters.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyeq/equation"
//
//	eq, err := equation.Parse("5 + 4*X + X^2 = X^2", nil)
//	if err != nil {
//	  // handle ErrEquationStructure or a term.Parse error
//	}
//	_ = eq.Left  // []term.Term, in textual order
//	_ = eq.Right
//
// Pass &Options{Variable: 'y'} to parse equations written in another
// marker letter; matching stays case-insensitive.
//
// Errors: ErrEquationStructure for a missing or repeated '=', plus the
// term package's sentinels propagated unmodified from the first term
// that fails.
package equation
