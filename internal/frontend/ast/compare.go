package ast

import (
	"cmp"
	"fmt"

	"github.com/asutton/beaker-old/internal/types"
)

func exprRank(e Expression) int {
	switch e.(type) {
	case *ConstantExpr:
		return 0
	case *IdentifierExpr:
		return 1
	case *UnaryExpr:
		return 2
	case *BinaryExpr:
		return 3
	case *CallExpr:
		return 4
	case *ErrorExpr:
		return 5
	}
	panic(fmt.Sprintf("unhandled expression %T", e))
}

// CompareExpr is a total structural order on expressions: node kind first,
// then type and value for constants, declaration for identifiers, operator
// and operands for the rest. Locations are ignored.
func CompareExpr(a, b Expression) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(exprRank(a), exprRank(b)); c != 0 {
		return c
	}

	switch x := a.(type) {
	case *ConstantExpr:
		y := b.(*ConstantExpr)
		if c := types.Compare(x.typ, y.typ); c != 0 {
			return c
		}
		return cmp.Compare(x.Value, y.Value)
	case *IdentifierExpr:
		return cmp.Compare(x.Decl, b.(*IdentifierExpr).Decl)
	case *UnaryExpr:
		y := b.(*UnaryExpr)
		if c := cmp.Compare(x.Op, y.Op); c != 0 {
			return c
		}
		return CompareExpr(x.X, y.X)
	case *BinaryExpr:
		y := b.(*BinaryExpr)
		if c := cmp.Compare(x.Op, y.Op); c != 0 {
			return c
		}
		if c := CompareExpr(x.X, y.X); c != 0 {
			return c
		}
		return CompareExpr(x.Y, y.Y)
	case *CallExpr:
		y := b.(*CallExpr)
		if c := CompareExpr(x.Fun, y.Fun); c != 0 {
			return c
		}
		for i := 0; i < len(x.Args) && i < len(y.Args); i++ {
			if c := CompareExpr(x.Args[i], y.Args[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(x.Args), len(y.Args))
	}
	return 0
}

// SameExpr reports structural equality.
func SameExpr(a, b Expression) bool {
	return CompareExpr(a, b) == 0
}
