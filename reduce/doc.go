// Package reduce combines the terms of a parsed equation into a dense
// canonical polynomial and renders it back to text.
//
// 🚀 What is the reduced form?
//
//	All right-hand terms are moved to the left (subtracted), like
//	terms are merged by exponent, and the result is expressed as a
//	"<polynomial> = 0" equation:
//
//	    "-4X^2 + 6*X = 2/4 + 5X"  →  "-4*X^2 + X - 1/2 = 0"
//
//	The coefficients come out as a dense slice ordered from the
//	highest touched exponent down to 0, missing exponents filled with
//	exact zeros. A term that cancels still counts as touched, so
//	"X^5 - X^5 = 2" keeps six slots.
//
// Algorithm Outline:
//  1. Accumulate left terms with + and right terms with − into a
//     sparse exponent→coefficient map.
//  2. Take the maximum touched exponent (0 when there are no terms).
//  3. Materialize slots max..0 into a dense slice, exact zero for
//     untouched exponents.
//
// Complexity:
//
//	Time   = O(T + E)  (T terms, E = max exponent)
//	Memory = O(E)
//
// Beyond formatting, ReducedForm offers coefficient access by
// exponent, the polynomial degree, and exact Horner evaluation.
// Reduce and String never fail; an all-zero form prints "0 = 0".
package reduce
