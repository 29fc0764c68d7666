package equation

import (
	"strings"

	"github.com/katalvlaran/polyeq/term"
)

// DefaultVariable is the marker letter assumed when no Options are given.
const DefaultVariable = 'X'

// Options configures equation parsing.
//
// Fields:
//   - Variable — the marker letter terms are written in, matched
//     case-insensitively. The zero value falls back to DefaultVariable.
//
// Example:
//
//	opts := equation.DefaultOptions()
//	opts.Variable = 'y'
//	eq, err := equation.Parse("2y = 4", &opts)
type Options struct {
	Variable rune
}

// DefaultOptions returns the canonical settings: variable marker 'X'.
func DefaultOptions() Options {
	return Options{Variable: DefaultVariable}
}

// Equation holds the parsed terms of both sides, in textual order.
// It is produced once by Parse and never mutated afterwards.
type Equation struct {
	Left  []term.Term
	Right []term.Term
}

// Parse splits input on '=' and parses every signed term of each side.
//
// A nil opts is equivalent to DefaultOptions(). Zero or more than one
// '=' is a structural error; any term failure propagates unmodified
// from the first offending substring.
//
// Returns (Equation, error).
func Parse(input string, opts *Options) (Equation, error) {
	variable := rune(DefaultVariable)
	if opts != nil && opts.Variable != 0 {
		variable = opts.Variable
	}

	sides := strings.Split(input, "=")
	if len(sides) != 2 {
		return Equation{}, ErrEquationStructure
	}

	left, err := parseSide(sides[0], variable)
	if err != nil {
		return Equation{}, err
	}
	right, err := parseSide(sides[1], variable)
	if err != nil {
		return Equation{}, err
	}

	return Equation{Left: left, Right: right}, nil
}

// parseSide tokenizes one side into signed term substrings and parses
// each of them. An empty side yields no terms.
func parseSide(side string, variable rune) ([]term.Term, error) {
	raws := splitTerms(side)
	terms := make([]term.Term, 0, len(raws))
	for _, raw := range raws {
		t, err := term.Parse(raw, variable)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	return terms, nil
}
