// Package term parses one textual polynomial term into an exact
// (coefficient, exponent) pair.
//
// 🚀 What is a term?
//
//	One signed monomial of a single-variable polynomial, written in
//	any of the accepted spellings:
//
//	  "5"        → (5, 0)      pure constant
//	  "2/4"      → (1/2, 0)    fractions are reduced exactly
//	  "X"        → (1, 1)      implicit coefficient
//	  "-x"       → (-1, 1)     marker is case-insensitive
//	  "5X"       → (5, 1)      juxtaposed coefficient
//	  "5*X"      → (5, 1)      explicit multiplication
//	  "-4X^2"    → (-4, 2)     explicit exponent
//	  "5*X^0"    → (5, 0)      exponent zero collapses to the constant slot
//
// ✨ Grammar rules (checked in this order):
//
//  1. A substring without the variable marker is a pure constant.
//  2. At most one '*' may appear, only between coefficient and marker.
//  3. With '^', exactly one split point and an integer, non-negative
//     exponent are required.
//  4. Without '^', the exponent defaults to 1.
//  5. The coefficient piece must end with the marker ('*' optional);
//     an empty, "+" or "-" coefficient means 1, +1, -1.
//  6. The remaining text must parse as an exact rational.
//
// Coefficients are math/big rationals in lowest terms with the sign
// carried on the numerator, so "2/4" and "0.5" are the same value.
//
// Errors are the package sentinels in errors.go, each wrapped with the
// offending text; match them with errors.Is.
package term
