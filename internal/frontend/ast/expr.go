package ast

import (
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/types"
)

// ConstantExpr is an integer or boolean value. Booleans are 0 and 1.
type ConstantExpr struct {
	Value int64
	typ   types.Type
	source.Location
}

func (c *ConstantExpr) INode()                {}
func (c *ConstantExpr) Expr()                 {}
func (c *ConstantExpr) Loc() *source.Location { return &c.Location }
func (c *ConstantExpr) Type() types.Type      { return c.typ }

// IdentifierExpr names a declaration. Its type is a reference to the
// declared type.
type IdentifierExpr struct {
	Name string
	Decl DeclID
	typ  types.Type
	source.Location
}

func (i *IdentifierExpr) INode()                {}
func (i *IdentifierExpr) Expr()                 {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }
func (i *IdentifierExpr) Type() types.Type      { return i.typ }

// UnaryExpr represents a unary expression
type UnaryExpr struct {
	Op  UnaryOp
	X   Expression
	typ types.Type
	source.Location
}

func (u *UnaryExpr) INode()                {}
func (u *UnaryExpr) Expr()                 {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }
func (u *UnaryExpr) Type() types.Type      { return u.typ }

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	Op  BinaryOp
	X   Expression // left operand
	Y   Expression // right operand
	typ types.Type
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }
func (b *BinaryExpr) Type() types.Type      { return b.typ }

// CallExpr applies a function to arguments
type CallExpr struct {
	Fun  Expression
	Args []Expression
	typ  types.Type
	source.Location
}

func (c *CallExpr) INode()                {}
func (c *CallExpr) Expr()                 {}
func (c *CallExpr) Loc() *source.Location { return &c.Location }
func (c *CallExpr) Type() types.Type      { return c.typ }

// ErrorExpr stands for an expression whose problem was already reported
type ErrorExpr struct {
	source.Location
}

func (e *ErrorExpr) INode()                {}
func (e *ErrorExpr) Expr()                 {}
func (e *ErrorExpr) Loc() *source.Location { return &e.Location }
func (e *ErrorExpr) Type() types.Type      { return types.Error() }
