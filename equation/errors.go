package equation

import "errors"

var (
	// ErrEquationStructure indicates the input does not split into
	// exactly two sides on '='. The text is the user-facing message.
	ErrEquationStructure = errors.New("Invalid equation format (expected exactly one '=')")
)
