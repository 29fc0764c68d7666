package term

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Term is one signed monomial: Coeff·variable^Exp.
//
// Coeff is an exact rational in lowest terms with the sign on the
// numerator; Exp is a non-negative integer. A Term is created by Parse
// and never mutated afterwards.
type Term struct {
	Coeff *big.Rat
	Exp   int
}

// Parse converts one trimmed term substring into a Term.
//
// The substring must already be free of whitespace (the equation
// splitter strips it); variable is the expected marker letter, matched
// case-insensitively.
//
// Grammar, in order:
//  1. No marker anywhere → pure constant, exponent 0.
//  2. More than one '*' → ErrMultipleOperators.
//  3. With '^': exactly two pieces, second a non-negative integer,
//     else ErrExponentFormat / ErrExponentValue.
//  4. Without '^': exponent defaults to 1.
//  5. The coefficient piece must end with the marker, optionally
//     preceded by '*', else ErrMissingVariable; an empty, "+" or "-"
//     remainder means 1, +1, -1.
//  6. The remainder must parse as an exact rational, else
//     ErrCoefficientFormat.
//
// Example:
//
//	t, err := term.Parse("-4X^2", 'X')
//	// t.Coeff = -4, t.Exp = 2
func Parse(raw string, variable rune) (Term, error) {
	if raw == "" {
		return Term{}, ErrEmptyTerm
	}

	upperMarker := string(unicode.ToUpper(variable))
	lowerMarker := string(unicode.ToLower(variable))

	// Rule 1: no marker at all — the whole substring is a constant.
	if !strings.Contains(raw, upperMarker) && !strings.Contains(raw, lowerMarker) {
		coeff, ok := new(big.Rat).SetString(raw)
		if !ok {
			return Term{}, fmt.Errorf("%w: '%s'", ErrCoefficientFormat, raw)
		}

		return Term{Coeff: coeff, Exp: 0}, nil
	}

	// Rule 2: a single '*' at most, between coefficient and marker.
	if strings.Count(raw, "*") > 1 {
		return Term{}, fmt.Errorf("%w: '%s' (multiple '*' operators)", ErrMultipleOperators, raw)
	}

	// Rules 3-4: resolve the exponent and the coefficient+marker piece.
	head, exp := raw, 1
	if strings.Contains(raw, "^") {
		pieces := strings.Split(raw, "^")
		if len(pieces) != 2 {
			return Term{}, fmt.Errorf("%w: '%s'", ErrExponentFormat, raw)
		}
		head = pieces[0]
		e, err := strconv.Atoi(pieces[1])
		if err != nil || e < 0 {
			return Term{}, fmt.Errorf("%w: '%s'", ErrExponentValue, pieces[1])
		}
		exp = e
	}

	// Rule 5: strip the trailing marker (and an optional '*' before it).
	var body string
	switch {
	case strings.HasSuffix(head, upperMarker):
		body = strings.TrimSuffix(head, upperMarker)
	case strings.HasSuffix(head, lowerMarker):
		body = strings.TrimSuffix(head, lowerMarker)
	default:
		return Term{}, fmt.Errorf("%w: '%s'", ErrMissingVariable, raw)
	}
	body = strings.TrimSuffix(body, "*")

	// Implicit coefficients: "X" → 1, "+X" → +1, "-X" → -1.
	switch body {
	case "", "+", "-":
		body += "1"
	}

	// Rule 6: exact rational coefficient.
	coeff, ok := new(big.Rat).SetString(body)
	if !ok {
		return Term{}, fmt.Errorf("%w: '%s'", ErrCoefficientFormat, body)
	}

	return Term{Coeff: coeff, Exp: exp}, nil
}
