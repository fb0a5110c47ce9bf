package consteval

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
)

// Evaluate computes the value of a closed constant expression with 64-bit
// two's complement arithmetic. Booleans are 0 and 1. Identifiers and calls
// are not constant: they are reported and evaluate to 0, as does a division
// or remainder by zero. The right operand of && and || is only evaluated
// when the left one does not decide the result.
func Evaluate(e ast.Expression, diag *diagnostics.DiagnosticBag) int64 {
	ev := evaluator{diag: diag}
	return ev.eval(e)
}

type evaluator struct {
	diag *diagnostics.DiagnosticBag
}

func (ev evaluator) notConstant(e ast.Expression) int64 {
	ev.diag.Add(
		diagnostics.NewError("not a constant expression").
			WithCode(diagnostics.ErrNotConstant).
			WithPrimaryLabel(e.Loc(), fmt.Sprintf("'%s' is not a constant expression", ast.Print(e))),
	)
	return 0
}

func (ev evaluator) eval(e ast.Expression) int64 {
	switch e := e.(type) {
	case *ast.ConstantExpr:
		return e.Value
	case *ast.IdentifierExpr, *ast.CallExpr:
		return ev.notConstant(e)
	case *ast.UnaryExpr:
		return unary(e.Op, ev.eval(e.X))
	case *ast.BinaryExpr:
		return ev.binary(e)
	case *ast.ErrorExpr:
		return 0
	}
	panic(fmt.Sprintf("unhandled expression %T", e))
}

func (ev evaluator) binary(e *ast.BinaryExpr) int64 {
	x := ev.eval(e.X)
	switch e.Op {
	case ast.LogicalAnd:
		if x == 0 {
			return 0
		}
		return truth(ev.eval(e.Y) != 0)
	case ast.LogicalOr:
		if x != 0 {
			return 1
		}
		return truth(ev.eval(e.Y) != 0)
	}

	y := ev.eval(e.Y)
	if (e.Op == ast.Div || e.Op == ast.Rem) && y == 0 {
		ev.diag.Add(
			diagnostics.NewError("division by zero in constant expression").
				WithCode(diagnostics.ErrDivisionByZero).
				WithPrimaryLabel(e.Y.Loc(), "divisor is zero"),
		)
		return 0
	}
	return binary(e.Op, x, y)
}

func truth(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func unary(op ast.UnaryOp, x int64) int64 {
	switch op {
	case ast.Pos:
		return x
	case ast.Neg:
		return -x
	case ast.Compl:
		return ^x
	case ast.Not:
		return truth(x == 0)
	}
	panic("invalid unary operator")
}

// binary applies a strict operator. The divisor of / and % must be
// nonzero. Shift counts use their low six bits.
func binary(op ast.BinaryOp, x, y int64) int64 {
	switch op {
	case ast.Add:
		return x + y
	case ast.Sub:
		return x - y
	case ast.Mul:
		return x * y
	case ast.Div:
		return x / y
	case ast.Rem:
		return x % y
	case ast.BitAnd:
		return x & y
	case ast.BitOr:
		return x | y
	case ast.BitXor:
		return x ^ y
	case ast.Shl:
		return x << (uint64(y) & 63)
	case ast.Shr:
		return x >> (uint64(y) & 63)
	case ast.Eq:
		return truth(x == y)
	case ast.Ne:
		return truth(x != y)
	case ast.Lt:
		return truth(x < y)
	case ast.Gt:
		return truth(x > y)
	case ast.Le:
		return truth(x <= y)
	case ast.Ge:
		return truth(x >= y)
	case ast.LogicalAnd:
		return truth(x != 0 && y != 0)
	case ast.LogicalOr:
		return truth(x != 0 || y != 0)
	}
	panic("invalid binary operator")
}
