// Package polyeq parses single-variable polynomial equations, combines
// like terms from both sides and renders the canonical reduced form.
//
// 🚀 What is polyeq?
//
//	A small, exact-arithmetic library that turns free-form algebraic
//	text such as
//
//	    "5 + 4*X + X^2 = X^2"
//
//	into its reduced form
//
//	    "4*X + 5 = 0"
//
//	together with the ordered coefficient list. All arithmetic is
//	performed on exact rationals (math/big.Rat) — no floating-point
//	rounding, ever.
//
// ✨ Why choose polyeq?
//
//   - Strict, predictable term grammar with descriptive errors
//   - Exact rational coefficients, integer or p/q rendering
//   - Canonical highest-degree-first output, stable across runs
//   - Pure Go core — no cgo, no hidden deps
//
// Everything is organized under three subpackages plus a CLI:
//
//	term/     — single-term grammar: "-4X^2", "5*X^0", "3/2*X" → (coefficient, exponent)
//	equation/ — splitting an equation on '=' and on signed-term boundaries
//	reduce/   — like-term accumulation, dense reduced form, formatting, evaluation
//	cmd/      — the polyeq command-line front end
//
// Quick ASCII example:
//
//	"-4X^2 + 6*X = 2/4 + 5X"
//	         │
//	         ▼
//	"-4*X^2 + X - 1/2 = 0"
//
// Dive into the per-package docs for grammar rules, error taxonomy and
// runnable examples.
//
//	go get github.com/katalvlaran/polyeq
package polyeq
