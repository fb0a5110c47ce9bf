package types

// IntPrecision is the bit width of the int type.
const IntPrecision = 32

var (
	voidType  = &VoidType{}
	boolType  = &BoolType{}
	intType   = &IntType{Precision: IntPrecision}
	errorType = &ErrorType{}
)

// Void returns the void singleton.
func Void() Type { return voidType }

// Bool returns the bool singleton.
func Bool() Type { return boolType }

// Int returns the int singleton.
func Int() Type { return intType }

// Error returns the error marker singleton.
func Error() Type { return errorType }
