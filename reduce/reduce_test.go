package reduce_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyeq/equation"
	"github.com/katalvlaran/polyeq/reduce"
)

// reduceInput parses and reduces one equation, failing the test on a
// parse error.
func reduceInput(t *testing.T, input string) reduce.ReducedForm {
	t.Helper()
	eq, err := equation.Parse(input, nil)
	require.NoError(t, err, "input %q should parse", input)

	return reduce.Reduce(eq)
}

// TestReduce_CombinesBothSides verifies left terms add, right terms
// subtract, and the slice comes out highest exponent first.
func TestReduce_CombinesBothSides(t *testing.T) {
	rf := reduceInput(t, "-4X^2 + 5*X^0 + 6*X = 2/4 + 5X")
	assert.Equal(t, []string{"-4", "1", "9/2"}, rf.CoefficientStrings())
	assert.Equal(t, 3, rf.Len())
}

// TestReduce_FractionalConstant covers exact fraction arithmetic in
// the constant slot.
func TestReduce_FractionalConstant(t *testing.T) {
	rf := reduceInput(t, "-4X^2 + 6*X = 2/4 + 5X")
	assert.Equal(t, []string{"-4", "1", "-1/2"}, rf.CoefficientStrings())
}

// TestReduce_EqualSides verifies a trivially balanced equation
// collapses to the single zero constant.
func TestReduce_EqualSides(t *testing.T) {
	for _, input := range []string{"5 = 5", "0 = 0", "X = X"} {
		rf := reduceInput(t, input)
		assert.Equal(t, 0, rf.Coefficient(0).Sign(), "input %q", input)
		assert.Equal(t, "0 = 0", rf.String(), "input %q", input)
	}
}

// TestReduce_TouchedKeySemantics documents that a cancelled term still
// fixes the length of the dense form: every exponent a term ever
// occupied gets a slot, zero or not.
func TestReduce_TouchedKeySemantics(t *testing.T) {
	rf := reduceInput(t, "X^5 - X^5 = 2")
	assert.Equal(t, []string{"0", "0", "0", "0", "0", "-2"}, rf.CoefficientStrings())
	assert.Equal(t, 6, rf.Len())
	assert.Equal(t, 0, rf.Degree(), "only the constant survives")
}

// TestReduce_EmptySide verifies a termless side contributes nothing.
func TestReduce_EmptySide(t *testing.T) {
	rf := reduceInput(t, "= 3")
	assert.Equal(t, []string{"-3"}, rf.CoefficientStrings())
}

// TestReduce_MissingExponentsFilled ensures gaps between touched
// exponents are filled with exact zeros.
func TestReduce_MissingExponentsFilled(t *testing.T) {
	rf := reduceInput(t, "X^3 = 7")
	assert.Equal(t, []string{"1", "0", "0", "-7"}, rf.CoefficientStrings())
}

// TestReducedForm_Accessors covers Coefficient, Degree and Len on a
// small quadratic.
func TestReducedForm_Accessors(t *testing.T) {
	rf := reduceInput(t, "X^2 + 3*X = 4")

	assert.Equal(t, 3, rf.Len())
	assert.Equal(t, 2, rf.Degree())
	assert.Equal(t, 0, rf.Coefficient(2).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, rf.Coefficient(1).Cmp(big.NewRat(3, 1)))
	assert.Equal(t, 0, rf.Coefficient(0).Cmp(big.NewRat(-4, 1)))

	// Out-of-range exponents read as exact zero.
	assert.Equal(t, 0, rf.Coefficient(5).Sign())
	assert.Equal(t, 0, rf.Coefficient(-1).Sign())
}

// TestReducedForm_Immutable verifies accessor results are copies:
// mutating them must not leak back into the form.
func TestReducedForm_Immutable(t *testing.T) {
	rf := reduceInput(t, "X = 2")

	rf.Coefficients()[0].SetInt64(99)
	rf.Coefficient(1).SetInt64(99)

	assert.Equal(t, []string{"1", "-2"}, rf.CoefficientStrings())
}

// TestReducedForm_Eval checks exact Horner evaluation, including a
// root and a fractional point.
func TestReducedForm_Eval(t *testing.T) {
	rf := reduceInput(t, "X^2 + 3*X = 4")

	assert.Equal(t, 0, rf.Eval(big.NewRat(1, 1)).Sign(), "x=1 is a root")
	assert.Equal(t, "-9/4", rf.Eval(big.NewRat(1, 2)).RatString())

	zero := reduceInput(t, "0 = 0")
	assert.Equal(t, 0, zero.Eval(big.NewRat(7, 3)).Sign())
}
