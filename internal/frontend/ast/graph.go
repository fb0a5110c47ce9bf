package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/asutton/beaker-old/internal/types"
)

// WriteGraph writes e as a Graphviz digraph. A node reachable along several
// paths is emitted once, so shared subexpressions show up as a DAG.
func WriteGraph(w io.Writer, name string, e Expression) error {
	g := &graphWriter{w: w, ids: make(map[Expression]int)}
	g.printf("digraph %q {\n", name)
	g.visit(e)
	g.printf("}\n")
	return g.err
}

type graphWriter struct {
	w   io.Writer
	ids map[Expression]int
	err error
}

func (g *graphWriter) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

func nodeLabel(e Expression) string {
	switch e := e.(type) {
	case *ConstantExpr:
		if types.IsBool(e.typ) {
			return strconv.FormatBool(e.Value != 0)
		}
		return strconv.FormatInt(e.Value, 10)
	case *IdentifierExpr:
		return e.Name
	case *UnaryExpr:
		return e.Op.String()
	case *BinaryExpr:
		return e.Op.String()
	case *CallExpr:
		return "call"
	default:
		return "<error>"
	}
}

func children(e Expression) []Expression {
	switch e := e.(type) {
	case *UnaryExpr:
		return []Expression{e.X}
	case *BinaryExpr:
		return []Expression{e.X, e.Y}
	case *CallExpr:
		return append([]Expression{e.Fun}, e.Args...)
	}
	return nil
}

// visit emits e and its edges once, returning its node id.
func (g *graphWriter) visit(e Expression) int {
	if id, ok := g.ids[e]; ok {
		return id
	}
	id := len(g.ids) + 1
	g.ids[e] = id
	g.printf("  n%d [label=%q];\n", id, nodeLabel(e))
	for _, c := range children(e) {
		cid := g.visit(c)
		g.printf("  n%d -> n%d;\n", id, cid)
	}
	return id
}
