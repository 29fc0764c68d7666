package reduce

import (
	"math/big"

	"github.com/katalvlaran/polyeq/equation"
)

// ReducedForm is the dense canonical polynomial: coefficients ordered
// from the highest touched exponent down to the constant slot.
// Immutable after Reduce; accessors hand out copies.
type ReducedForm struct {
	coeffs []*big.Rat // index 0 = highest exponent, last = exponent 0
}

// Reduce merges the equation's terms into a ReducedForm.
//
// Left-side coefficients are added and right-side coefficients
// subtracted at their exponent slot, which moves every right-hand term
// to the left algebraically. The dense slice spans the maximum touched
// exponent down to 0 — touched means a term existed there, even when
// the accumulated coefficient cancelled to zero. An equation with no
// terms at all reduces to the single zero constant.
//
// Reduce never fails.
func Reduce(eq equation.Equation) ReducedForm {
	acc := make(map[int]*big.Rat, len(eq.Left)+len(eq.Right))
	at := func(exp int) *big.Rat {
		c, ok := acc[exp]
		if !ok {
			c = new(big.Rat)
			acc[exp] = c
		}

		return c
	}

	for _, t := range eq.Left {
		c := at(t.Exp)
		c.Add(c, t.Coeff)
	}
	for _, t := range eq.Right {
		c := at(t.Exp)
		c.Sub(c, t.Coeff)
	}

	maxExp := 0
	for exp := range acc {
		if exp > maxExp {
			maxExp = exp
		}
	}

	coeffs := make([]*big.Rat, maxExp+1)
	for i := range coeffs {
		if c, ok := acc[maxExp-i]; ok {
			coeffs[i] = c
		} else {
			coeffs[i] = new(big.Rat)
		}
	}

	return ReducedForm{coeffs: coeffs}
}

// Len returns the number of coefficient slots (max touched exponent + 1).
func (rf ReducedForm) Len() int { return len(rf.coeffs) }

// Coefficients returns a copy of the dense coefficient slice, highest
// exponent first.
func (rf ReducedForm) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(rf.coeffs))
	for i, c := range rf.coeffs {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Coefficient returns a copy of the coefficient at the given exponent,
// or exact zero when the exponent lies outside the form.
func (rf ReducedForm) Coefficient(exp int) *big.Rat {
	if exp < 0 || exp >= len(rf.coeffs) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(rf.coeffs[len(rf.coeffs)-1-exp])
}

// Degree returns the highest exponent with a non-zero coefficient,
// or 0 for the all-zero form.
func (rf ReducedForm) Degree() int {
	for i, c := range rf.coeffs {
		if c.Sign() != 0 {
			return len(rf.coeffs) - 1 - i
		}
	}

	return 0
}
