package term

import "errors"

// Sentinel parse errors. Each is wrapped with the offending substring
// at the point of detection; the wrapped text is the final user-facing
// message, so these deliberately carry no package prefix.
var (
	// ErrEmptyTerm indicates an empty term substring reached the parser.
	ErrEmptyTerm = errors.New("Empty term")
	// ErrMultipleOperators indicates more than one '*' inside a term.
	ErrMultipleOperators = errors.New("Invalid term format")
	// ErrExponentFormat indicates '^' does not split the term into exactly two pieces.
	ErrExponentFormat = errors.New("Invalid exponent in term")
	// ErrExponentValue indicates the exponent text is not a non-negative integer.
	ErrExponentValue = errors.New("Invalid exponent value")
	// ErrMissingVariable indicates the coefficient piece does not end with the variable marker.
	ErrMissingVariable = errors.New("Missing variable in term")
	// ErrCoefficientFormat indicates the coefficient text is not an exact rational.
	ErrCoefficientFormat = errors.New("Invalid coefficient")
)
