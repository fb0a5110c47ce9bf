package ast

import (
	"github.com/asutton/beaker-old/internal/source"
)

// EmptyStmt is a lone ';'
type EmptyStmt struct {
	source.Location
}

func (e *EmptyStmt) INode()                {}
func (e *EmptyStmt) Stmt()                 {}
func (e *EmptyStmt) Loc() *source.Location { return &e.Location }

// DeclStmt represents a declaration statement
type DeclStmt struct {
	Decl Declaration
	source.Location
}

func (d *DeclStmt) INode()                {}
func (d *DeclStmt) Stmt()                 {}
func (d *DeclStmt) Loc() *source.Location { return &d.Location }

// ExprStmt evaluates an expression for its effects
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {}
func (e *ExprStmt) Stmt()                 {}
func (e *ExprStmt) Loc() *source.Location { return &e.Location }

// AssignStmt stores the value of Rhs in the object named by Lhs
type AssignStmt struct {
	Lhs Expression
	Rhs Expression
	source.Location
}

func (a *AssignStmt) INode()                {}
func (a *AssignStmt) Stmt()                 {}
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

type IfThenStmt struct {
	Cond Expression
	Then Statement
	source.Location
}

func (i *IfThenStmt) INode()                {}
func (i *IfThenStmt) Stmt()                 {}
func (i *IfThenStmt) Loc() *source.Location { return &i.Location }

type IfElseStmt struct {
	Cond Expression
	Then Statement
	Else Statement
	source.Location
}

func (i *IfElseStmt) INode()                {}
func (i *IfElseStmt) Stmt()                 {}
func (i *IfElseStmt) Loc() *source.Location { return &i.Location }

type WhileStmt struct {
	Cond Expression
	Body Statement
	source.Location
}

func (w *WhileStmt) INode()                {}
func (w *WhileStmt) Stmt()                 {}
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// DoStmt runs Body, then repeats while Cond holds
type DoStmt struct {
	Body Statement
	Cond Expression
	source.Location
}

func (d *DoStmt) INode()                {}
func (d *DoStmt) Stmt()                 {}
func (d *DoStmt) Loc() *source.Location { return &d.Location }

// ReturnStmt leaves the enclosing function. Result is nil for a bare return.
type ReturnStmt struct {
	Result Expression
	source.Location
}

func (r *ReturnStmt) INode()                {}
func (r *ReturnStmt) Stmt()                 {}
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }

// BlockStmt is a braced statement list with its own scope
type BlockStmt struct {
	Stmts []Statement
	source.Location
}

func (b *BlockStmt) INode()                {}
func (b *BlockStmt) Stmt()                 {}
func (b *BlockStmt) Loc() *source.Location { return &b.Location }

// ErrorStmt stands for a statement whose problem was already reported
type ErrorStmt struct {
	source.Location
}

func (e *ErrorStmt) INode()                {}
func (e *ErrorStmt) Stmt()                 {}
func (e *ErrorStmt) Loc() *source.Location { return &e.Location }
