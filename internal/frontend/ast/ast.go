package ast

import (
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/types"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value. Its type is fixed
// when the node is built.
type Expression interface {
	Node
	Expr()
	Type() types.Type
}

// Declaration binds a name to a type and, for variables and functions,
// a value or body.
type Declaration interface {
	Node
	Decl()
	DeclID() DeclID
	DeclName() string
	Type() types.Type
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Unit is a translation unit: the top-level declarations of one file in
// source order, plus the arena owning every declaration they contain.
type Unit struct {
	Filename string
	Decls    []Declaration
	Arena    *Arena
}

// ExprType returns the value type of e: its type with one reference level
// stripped.
func ExprType(e Expression) types.Type {
	return types.Decay(e.Type())
}

// IsError reports whether n is an error node of any category.
func IsError(n Node) bool {
	switch n.(type) {
	case *ErrorExpr, *ErrorDecl, *ErrorStmt:
		return true
	}
	return false
}
