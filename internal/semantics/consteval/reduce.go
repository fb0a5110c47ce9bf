package consteval

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/frontend/ast"
)

// Reduce returns the smallest equivalent expression. A unary or binary node
// whose reduced operands are all constants becomes one constant of the
// node's type; any other node is rebuilt over its reduced operands.
// Identifiers and calls are returned unchanged. A division or remainder by
// a constant zero is left unfolded so Evaluate can report it.
//
// b rebuilds the nodes; since operand types are preserved no new
// diagnostics are reported.
func Reduce(b *ast.Builder, e ast.Expression) ast.Expression {
	switch e := e.(type) {
	case *ast.ConstantExpr, *ast.IdentifierExpr, *ast.CallExpr, *ast.ErrorExpr:
		return e

	case *ast.UnaryExpr:
		x := Reduce(b, e.X)
		if c, ok := x.(*ast.ConstantExpr); ok {
			return b.MakeConstant(e.Loc(), unary(e.Op, c.Value), e.Type())
		}
		if x == e.X {
			return e
		}
		return b.MakeUnary(e.Loc(), e.Op, x)

	case *ast.BinaryExpr:
		x, y := Reduce(b, e.X), Reduce(b, e.Y)
		cx, okx := x.(*ast.ConstantExpr)
		cy, oky := y.(*ast.ConstantExpr)
		if okx && oky && !divByZero(e.Op, cy.Value) {
			return b.MakeConstant(e.Loc(), binary(e.Op, cx.Value, cy.Value), e.Type())
		}
		if x == e.X && y == e.Y {
			return e
		}
		return b.MakeBinary(e.Loc(), e.Op, x, y)
	}
	panic(fmt.Sprintf("unhandled expression %T", e))
}

func divByZero(op ast.BinaryOp, divisor int64) bool {
	return (op == ast.Div || op == ast.Rem) && divisor == 0
}

// Folder returns a hook for ast.Builder.Fold that reduces initializers.
func Folder(b *ast.Builder) func(ast.Expression) ast.Expression {
	return func(e ast.Expression) ast.Expression {
		return Reduce(b, e)
	}
}
