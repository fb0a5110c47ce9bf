package ast

import (
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/types"
)

// VariableDecl declares an object. Init is nil when the variable is
// uninitialized and is attached at most once through FinishVariable.
type VariableDecl struct {
	ID   DeclID
	Name string
	Init Expression
	typ  types.Type
	done bool
	source.Location
}

func (v *VariableDecl) INode()                {}
func (v *VariableDecl) Decl()                 {}
func (v *VariableDecl) Loc() *source.Location { return &v.Location }
func (v *VariableDecl) DeclID() DeclID        { return v.ID }
func (v *VariableDecl) DeclName() string      { return v.Name }
func (v *VariableDecl) Type() types.Type      { return v.typ }

// ParameterDecl is a function parameter
type ParameterDecl struct {
	ID   DeclID
	Name string
	typ  types.Type
	source.Location
}

func (p *ParameterDecl) INode()                {}
func (p *ParameterDecl) Decl()                 {}
func (p *ParameterDecl) Loc() *source.Location { return &p.Location }
func (p *ParameterDecl) DeclID() DeclID        { return p.ID }
func (p *ParameterDecl) DeclName() string      { return p.Name }
func (p *ParameterDecl) Type() types.Type      { return p.typ }

// FunctionDecl declares a function. Body is nil for a declaration without a
// definition and is attached at most once through FinishFunction.
type FunctionDecl struct {
	ID     DeclID
	Name   string
	Params []*ParameterDecl
	Body   Statement
	typ    types.Type
	done   bool
	source.Location
}

func (f *FunctionDecl) INode()                {}
func (f *FunctionDecl) Decl()                 {}
func (f *FunctionDecl) Loc() *source.Location { return &f.Location }
func (f *FunctionDecl) DeclID() DeclID        { return f.ID }
func (f *FunctionDecl) DeclName() string      { return f.Name }
func (f *FunctionDecl) Type() types.Type      { return f.typ }

// ReturnType is the declared result type, or the error type when the
// signature could not be formed.
func (f *FunctionDecl) ReturnType() types.Type {
	if fn, ok := f.typ.(*types.FunctionType); ok {
		return fn.Return()
	}
	return types.Error()
}

// ErrorDecl stands for a declaration whose problem was already reported
type ErrorDecl struct {
	source.Location
}

func (e *ErrorDecl) INode()                {}
func (e *ErrorDecl) Decl()                 {}
func (e *ErrorDecl) Loc() *source.Location { return &e.Location }
func (e *ErrorDecl) DeclID() DeclID        { return NoDecl }
func (e *ErrorDecl) DeclName() string      { return "" }
func (e *ErrorDecl) Type() types.Type      { return types.Error() }
