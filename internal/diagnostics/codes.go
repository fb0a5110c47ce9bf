package diagnostics

// Error codes for the beaker front end
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"

	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrExpectedToken     = "P0002"
	ErrInvalidExpression = "P0003"
	ErrInvalidStatement  = "P0004"
	ErrInvalidType       = "P0005"
	ErrMissingSemiCol    = "P0006"

	// Semantic errors (T prefix)
	ErrTypeMismatch       = "T0001"
	ErrUndefinedSymbol    = "T0002"
	ErrRedeclaredSymbol   = "T0003"
	ErrInvalidOperand     = "T0004"
	ErrNotCallable        = "T0005"
	ErrWrongArgumentCount = "T0006"
	ErrInvalidAssignment  = "T0007"
	ErrInvalidCondition   = "T0008"
	ErrInvalidReturn      = "T0009"
	ErrMissingReturn      = "T0010"
	ErrVoidReference      = "T0011"

	// Constant evaluation errors (C prefix)
	ErrNotConstant    = "C0001"
	ErrDivisionByZero = "C0002"
)
