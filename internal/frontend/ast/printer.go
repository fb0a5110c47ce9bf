package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asutton/beaker-old/internal/types"
)

// Print renders a node as an s-expression, e.g. (+ 1 (* 2 3)).
func Print(n Node) string {
	var sb strings.Builder
	p := printer{sb: &sb}
	p.node(n)
	return sb.String()
}

// PrintUnit renders every top-level declaration on its own line.
func PrintUnit(u *Unit) string {
	var sb strings.Builder
	for _, d := range u.Decls {
		sb.WriteString(Print(d))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type printer struct {
	sb *strings.Builder
}

func (p printer) write(parts ...string) {
	for _, s := range parts {
		p.sb.WriteString(s)
	}
}

func (p printer) list(head string, nodes ...Node) {
	p.write("(", head)
	for _, n := range nodes {
		p.write(" ")
		p.node(n)
	}
	p.write(")")
}

func (p printer) node(n Node) {
	switch n := n.(type) {
	case nil:
		p.write("<nil>")

	case *ConstantExpr:
		if types.IsBool(n.typ) {
			p.write(strconv.FormatBool(n.Value != 0))
		} else {
			p.write(strconv.FormatInt(n.Value, 10))
		}
	case *IdentifierExpr:
		p.write(n.Name)
	case *UnaryExpr:
		p.list(n.Op.String(), n.X)
	case *BinaryExpr:
		p.list(n.Op.String(), n.X, n.Y)
	case *CallExpr:
		args := make([]Node, 0, len(n.Args)+1)
		args = append(args, n.Fun)
		for _, a := range n.Args {
			args = append(args, a)
		}
		p.list("call", args...)
	case *ErrorExpr, *ErrorDecl, *ErrorStmt:
		p.write("<error>")

	case *VariableDecl:
		p.write("(var ", n.Name, " ", n.typ.String())
		if n.Init != nil {
			p.write(" ")
			p.node(n.Init)
		}
		p.write(")")
	case *ParameterDecl:
		p.write("(param ", n.Name, " ", n.typ.String(), ")")
	case *FunctionDecl:
		p.write("(def ", n.Name, " ", n.typ.String())
		for _, param := range n.Params {
			p.write(" ")
			p.node(param)
		}
		if n.Body != nil {
			p.write(" ")
			p.node(n.Body)
		}
		p.write(")")

	case *EmptyStmt:
		p.write("(empty)")
	case *DeclStmt:
		p.node(n.Decl)
	case *ExprStmt:
		p.list("expr", n.X)
	case *AssignStmt:
		p.list("=", n.Lhs, n.Rhs)
	case *IfThenStmt:
		p.list("if", n.Cond, n.Then)
	case *IfElseStmt:
		p.list("if", n.Cond, n.Then, n.Else)
	case *WhileStmt:
		p.list("while", n.Cond, n.Body)
	case *DoStmt:
		p.list("do", n.Body, n.Cond)
	case *ReturnStmt:
		if n.Result == nil {
			p.write("(return)")
		} else {
			p.list("return", n.Result)
		}
	case *BlockStmt:
		nodes := make([]Node, len(n.Stmts))
		for i, s := range n.Stmts {
			nodes[i] = s
		}
		p.list("block", nodes...)

	default:
		panic(fmt.Sprintf("unhandled node %T", n))
	}
}
