package ast

// UnaryOp is a prefix operator
type UnaryOp int

const (
	Pos   UnaryOp = iota // +
	Neg                  // -
	Compl                // ~
	Not                  // !
)

func (op UnaryOp) String() string {
	switch op {
	case Pos:
		return "+"
	case Neg:
		return "-"
	case Compl:
		return "~"
	case Not:
		return "!"
	}
	panic("invalid unary operator")
}

// IsLogical reports whether op takes and yields bool.
func (op UnaryOp) IsLogical() bool { return op == Not }

// BinaryOp is an infix operator
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Rem
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	LogicalAnd
	LogicalOr
)

var binarySpellings = [...]string{
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Rem:        "%",
	BitAnd:     "&",
	BitOr:      "|",
	BitXor:     "^",
	Shl:        "<<",
	Shr:        ">>",
	Eq:         "==",
	Ne:         "!=",
	Lt:         "<",
	Gt:         ">",
	Le:         "<=",
	Ge:         ">=",
	LogicalAnd: "&&",
	LogicalOr:  "||",
}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binarySpellings) {
		panic("invalid binary operator")
	}
	return binarySpellings[op]
}

// IsArithmetic covers the integer operators, including bitwise and shifts.
func (op BinaryOp) IsArithmetic() bool { return op >= Add && op <= Shr }

// IsRelational covers equality and ordering comparisons.
func (op BinaryOp) IsRelational() bool { return op >= Eq && op <= Ge }

func (op BinaryOp) IsLogical() bool { return op == LogicalAnd || op == LogicalOr }
