package consteval

import (
	"fmt"
	"slices"

	"github.com/asutton/beaker-old/internal/frontend/ast"
)

// Compact rebuilds e as a DAG in which equal leaves are one node: equal
// constants share a node, as do identifiers naming the same declaration.
// The first occurrence of a leaf represents all of them.
func Compact(b *ast.Builder, e ast.Expression) ast.Expression {
	c := compactor{b: b}
	return c.compact(e)
}

// compactor keeps the leaves seen so far sorted by ast.CompareExpr.
type compactor struct {
	b      *ast.Builder
	leaves []ast.Expression
}

func (c *compactor) leaf(e ast.Expression) ast.Expression {
	i, found := slices.BinarySearchFunc(c.leaves, e, ast.CompareExpr)
	if found {
		return c.leaves[i]
	}
	c.leaves = slices.Insert(c.leaves, i, e)
	return e
}

func (c *compactor) compact(e ast.Expression) ast.Expression {
	switch e := e.(type) {
	case *ast.ConstantExpr, *ast.IdentifierExpr:
		return c.leaf(e)
	case *ast.ErrorExpr:
		return e
	case *ast.UnaryExpr:
		return c.b.MakeUnary(e.Loc(), e.Op, c.compact(e.X))
	case *ast.BinaryExpr:
		x := c.compact(e.X)
		y := c.compact(e.Y)
		return c.b.MakeBinary(e.Loc(), e.Op, x, y)
	case *ast.CallExpr:
		fn := c.compact(e.Fun)
		args := make([]ast.Expression, len(e.Args))
		for i, a := range e.Args {
			args[i] = c.compact(a)
		}
		return c.b.MakeCall(e.Loc(), fn, args)
	}
	panic(fmt.Sprintf("unhandled expression %T", e))
}
