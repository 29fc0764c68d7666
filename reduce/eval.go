package reduce

import "math/big"

// Eval evaluates the reduced polynomial at x using Horner's scheme,
// exactly. The all-zero and empty forms evaluate to 0. The receiver
// and x are not modified.
func (rf ReducedForm) Eval(x *big.Rat) *big.Rat {
	v := new(big.Rat)
	for _, c := range rf.coeffs {
		v.Mul(v, x)
		v.Add(v, c)
	}

	return v
}
