package reduce

import (
	"math/big"
	"strconv"
	"strings"
)

// one is the unit magnitude; terms with |coefficient| == 1 and a
// positive exponent render without the "1*" prefix.
var one = big.NewRat(1, 1)

// String renders the canonical "<terms> = 0" text.
//
// Zero coefficients are skipped. The first retained term carries an
// attached '-' when negative and no sign when positive; every later
// term is joined with "+ " or "- ". The sign lives only in the sign
// token — magnitudes are rendered from the absolute value, integers
// bare and fractions as "p/q". An all-zero or empty form prints
// "0 = 0". String never fails.
func (rf ReducedForm) String() string {
	var parts []string
	for i, c := range rf.coeffs {
		if c.Sign() == 0 {
			continue
		}
		exp := len(rf.coeffs) - 1 - i
		parts = append(parts, renderTerm(c, exp, len(parts) == 0))
	}
	if len(parts) == 0 {
		return "0 = 0"
	}

	return strings.Join(parts, " ") + " = 0"
}

// CoefficientStrings renders every coefficient highest-exponent-first,
// integers bare and fractions as "p/q", signs attached.
func (rf ReducedForm) CoefficientStrings() []string {
	out := make([]string, len(rf.coeffs))
	for i, c := range rf.coeffs {
		out[i] = c.RatString()
	}

	return out
}

// renderTerm renders one non-zero coefficient as a signed term.
func renderTerm(c *big.Rat, exp int, first bool) string {
	var sign string
	switch {
	case first && c.Sign() < 0:
		sign = "-"
	case !first && c.Sign() < 0:
		sign = "- "
	case !first:
		sign = "+ "
	}

	mag := new(big.Rat).Abs(c)
	switch {
	case exp == 0:
		return sign + mag.RatString()
	case mag.Cmp(one) == 0:
		return sign + variableText(exp)
	default:
		return sign + mag.RatString() + "*" + variableText(exp)
	}
}

// variableText renders the variable suffix for a positive exponent.
func variableText(exp int) string {
	if exp == 1 {
		return "X"
	}

	return "X^" + strconv.Itoa(exp)
}
