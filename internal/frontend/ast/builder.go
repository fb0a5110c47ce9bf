package ast

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/types"
)

// Builder constructs nodes and checks the static semantics of each one as it
// is built. A rule violation is reported to the diagnostic bag and yields an
// error node. Error operands yield error nodes without a new report.
type Builder struct {
	Types *types.Registry
	Arena *Arena

	// Fold, when set, rewrites a variable's initializer before it is
	// attached.
	Fold func(Expression) Expression

	diag *diagnostics.DiagnosticBag
}

func NewBuilder(reg *types.Registry, arena *Arena, diag *diagnostics.DiagnosticBag) *Builder {
	return &Builder{Types: reg, Arena: arena, diag: diag}
}

// Diagnostics returns the bag the builder reports to.
func (b *Builder) Diagnostics() *diagnostics.DiagnosticBag {
	return b.diag
}

func at(loc *source.Location) source.Location {
	if loc == nil {
		return source.Location{}
	}
	return *loc
}

func (b *Builder) report(d *diagnostics.Diagnostic) {
	b.diag.Add(d)
}

func (b *Builder) errorf(loc *source.Location, code, format string, args ...any) {
	b.report(diagnostics.NewError(fmt.Sprintf(format, args...)).
		WithCode(code).
		WithPrimaryLabel(loc, ""))
}

// Types

// ReferenceType forms ref t, reporting a reference to void at loc.
func (b *Builder) ReferenceType(loc *source.Location, t types.Type) types.Type {
	r, err := b.Types.Reference(t)
	if err != nil {
		b.errorf(loc, diagnostics.ErrVoidReference, "%s", err)
	}
	return r
}

// FunctionType forms (params...) -> ret.
func (b *Builder) FunctionType(params []types.Type, ret types.Type) types.Type {
	return b.Types.Function(params, ret)
}

// Expressions

func (b *Builder) MakeBool(loc *source.Location, v bool) *ConstantExpr {
	var n int64
	if v {
		n = 1
	}
	return &ConstantExpr{Value: n, typ: types.Bool(), Location: at(loc)}
}

func (b *Builder) MakeInt(loc *source.Location, v int64) *ConstantExpr {
	return &ConstantExpr{Value: v, typ: types.Int(), Location: at(loc)}
}

// MakeConstant builds a constant of an object type t.
func (b *Builder) MakeConstant(loc *source.Location, v int64, t types.Type) Expression {
	switch {
	case types.IsBool(t):
		return b.MakeBool(loc, v != 0)
	case types.IsInt(t):
		return b.MakeInt(loc, v)
	}
	return &ErrorExpr{Location: at(loc)}
}

// MakeIdentifier refers to the declaration id. The expression has type
// ref T where T is the declared type.
func (b *Builder) MakeIdentifier(loc *source.Location, id DeclID) Expression {
	decl := b.Arena.Get(id)
	if decl == nil || types.IsError(decl.Type()) {
		return &ErrorExpr{Location: at(loc)}
	}
	ref := b.ReferenceType(loc, decl.Type())
	if types.IsError(ref) {
		return &ErrorExpr{Location: at(loc)}
	}
	return &IdentifierExpr{Name: decl.DeclName(), Decl: id, typ: ref, Location: at(loc)}
}

func (b *Builder) MakeUnary(loc *source.Location, op UnaryOp, x Expression) Expression {
	t := ExprType(x)
	if types.IsError(t) {
		return &ErrorExpr{Location: at(loc)}
	}

	want := types.Int()
	if op.IsLogical() {
		want = types.Bool()
	}
	if t != want {
		b.report(diagnostics.InvalidOperand(x.Loc(), t))
		return &ErrorExpr{Location: at(loc)}
	}
	return &UnaryExpr{Op: op, X: x, typ: want, Location: at(loc)}
}

func (b *Builder) MakeBinary(loc *source.Location, op BinaryOp, x, y Expression) Expression {
	t1, t2 := ExprType(x), ExprType(y)
	if types.AnyError(t1, t2) {
		return &ErrorExpr{Location: at(loc)}
	}

	switch {
	case op.IsRelational():
		if t1 != t2 {
			b.report(diagnostics.TypeMismatch(y.Loc(), "comparison", t1, t2))
			return &ErrorExpr{Location: at(loc)}
		}
		return &BinaryExpr{Op: op, X: x, Y: y, typ: types.Bool(), Location: at(loc)}

	case op.IsLogical():
		if !b.checkOperands(types.Bool(), x, y) {
			return &ErrorExpr{Location: at(loc)}
		}
		return &BinaryExpr{Op: op, X: x, Y: y, typ: types.Bool(), Location: at(loc)}

	default:
		if !b.checkOperands(types.Int(), x, y) {
			return &ErrorExpr{Location: at(loc)}
		}
		return &BinaryExpr{Op: op, X: x, Y: y, typ: types.Int(), Location: at(loc)}
	}
}

// checkOperands reports every operand whose value type is not want.
func (b *Builder) checkOperands(want types.Type, operands ...Expression) bool {
	ok := true
	for _, e := range operands {
		if t := ExprType(e); t != want {
			b.report(diagnostics.InvalidOperand(e.Loc(), t))
			ok = false
		}
	}
	return ok
}

// MakeCall applies fn to args. Arguments must match the parameter list
// exactly in count and type.
func (b *Builder) MakeCall(loc *source.Location, fn Expression, args []Expression) Expression {
	ft := ExprType(fn)
	if types.IsError(ft) {
		return &ErrorExpr{Location: at(loc)}
	}
	for _, a := range args {
		if types.IsError(ExprType(a)) {
			return &ErrorExpr{Location: at(loc)}
		}
	}

	fnType, ok := ft.(*types.FunctionType)
	if !ok {
		b.report(diagnostics.NewError(fmt.Sprintf("'%s' is not callable", Print(fn))).
			WithCode(diagnostics.ErrNotCallable).
			WithPrimaryLabel(fn.Loc(), fmt.Sprintf("has type '%s'", ft)))
		return &ErrorExpr{Location: at(loc)}
	}

	params := fnType.Params()
	if len(args) != len(params) {
		b.report(diagnostics.WrongArgumentCount(loc, len(params), len(args)))
		return &ErrorExpr{Location: at(loc)}
	}

	ok = true
	for i, a := range args {
		if t, match := binds(params[i], a); !match {
			b.report(diagnostics.TypeMismatch(a.Loc(), fmt.Sprintf("argument %d", i+1), params[i], t))
			ok = false
		}
	}
	if !ok {
		return &ErrorExpr{Location: at(loc)}
	}

	return &CallExpr{Fun: fn, Args: args, typ: fnType.Return(), Location: at(loc)}
}

// binds reports whether e can initialize an object or parameter of type
// want, along with the type compared. A reference binds only to an lvalue
// of its referent; other types compare by value type.
func binds(want types.Type, e Expression) (types.Type, bool) {
	if types.IsReference(want) {
		return e.Type(), e.Type() == want
	}
	t := ExprType(e)
	return t, t == want
}

// Declarations

// VariableHandle is a declared variable whose initializer is not attached yet.
type VariableHandle struct {
	decl *VariableDecl
}

// ID returns the handle of the declared variable.
func (h VariableHandle) ID() DeclID { return h.decl.ID }

// Decl returns the variable as declared so far. It must not be mutated.
func (h VariableHandle) Decl() *VariableDecl { return h.decl }

// DeclareVariable creates a variable in the arena. It can be named by
// identifiers before FinishVariable attaches the initializer.
func (b *Builder) DeclareVariable(loc *source.Location, name string, t types.Type) VariableHandle {
	decl := &VariableDecl{ID: b.Arena.next(), Name: name, typ: t, Location: at(loc)}
	b.Arena.add(decl)
	return VariableHandle{decl: decl}
}

// FinishVariable checks and attaches the initializer. init may be nil for an
// uninitialized variable. The handle must not be finished twice.
func (b *Builder) FinishVariable(h VariableHandle, init Expression) Declaration {
	decl := h.decl
	if decl.done {
		panic("variable " + decl.Name + " finished twice")
	}
	decl.done = true

	if types.IsError(decl.typ) {
		return &ErrorDecl{Location: decl.Location}
	}
	if init == nil {
		return decl
	}

	if types.IsError(ExprType(init)) {
		return &ErrorDecl{Location: decl.Location}
	}
	if t, match := binds(decl.typ, init); !match {
		b.report(diagnostics.TypeMismatch(init.Loc(), "initializer", decl.typ, t))
		return &ErrorDecl{Location: decl.Location}
	}

	if b.Fold != nil {
		init = b.Fold(init)
	}
	decl.Init = init
	return decl
}

// MakeParameter creates a parameter in the arena.
func (b *Builder) MakeParameter(loc *source.Location, name string, t types.Type) *ParameterDecl {
	decl := &ParameterDecl{ID: b.Arena.next(), Name: name, typ: t, Location: at(loc)}
	b.Arena.add(decl)
	return decl
}

// FunctionHandle is a declared function whose body is not attached yet.
type FunctionHandle struct {
	decl *FunctionDecl
}

func (h FunctionHandle) ID() DeclID { return h.decl.ID }

// Decl returns the function as declared so far. It must not be mutated.
func (h FunctionHandle) Decl() *FunctionDecl { return h.decl }

// DeclareFunction creates a function in the arena with the type formed from
// its parameters and ret. Recursive calls in the body resolve to it.
func (b *Builder) DeclareFunction(loc *source.Location, name string, params []*ParameterDecl, ret types.Type) FunctionHandle {
	pts := make([]types.Type, len(params))
	for i, p := range params {
		pts[i] = p.typ
	}
	decl := &FunctionDecl{
		ID:       b.Arena.next(),
		Name:     name,
		Params:   params,
		typ:      b.FunctionType(pts, ret),
		Location: at(loc),
	}
	b.Arena.add(decl)
	return FunctionHandle{decl: decl}
}

// FinishFunction checks the return paths of body against the declared
// return type and attaches it. The handle must not be finished twice.
func (b *Builder) FinishFunction(h FunctionHandle, body Statement) Declaration {
	decl := h.decl
	if decl.done {
		panic("function " + decl.Name + " finished twice")
	}
	decl.done = true

	ret := decl.ReturnType()
	if types.IsError(ret) || body == nil || IsError(body) {
		return &ErrorDecl{Location: decl.Location}
	}
	if !b.CheckDefinition(&decl.Location, ret, body) {
		return &ErrorDecl{Location: decl.Location}
	}
	decl.Body = body
	return decl
}

// Statements

func (b *Builder) MakeEmpty(loc *source.Location) Statement {
	return &EmptyStmt{Location: at(loc)}
}

func (b *Builder) MakeDeclStmt(loc *source.Location, d Declaration) Statement {
	if IsError(d) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &DeclStmt{Decl: d, Location: at(loc)}
}

func (b *Builder) MakeExprStmt(loc *source.Location, e Expression) Statement {
	if IsError(e) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &ExprStmt{X: e, Location: at(loc)}
}

// MakeAssign requires lhs to name an object of the rhs value type.
func (b *Builder) MakeAssign(loc *source.Location, lhs, rhs Expression) Statement {
	lt, rt := lhs.Type(), ExprType(rhs)
	if types.AnyError(lt, rt) {
		return &ErrorStmt{Location: at(loc)}
	}

	ref, ok := lt.(*types.ReferenceType)
	switch {
	case !ok:
		b.errorf(lhs.Loc(), diagnostics.ErrInvalidAssignment, "assignment to temporary")
		return &ErrorStmt{Location: at(loc)}
	case types.IsVoid(ref.Referent()):
		b.errorf(lhs.Loc(), diagnostics.ErrInvalidAssignment, "assignment to 'void'")
		return &ErrorStmt{Location: at(loc)}
	case !types.IsObject(ref.Referent()):
		b.errorf(lhs.Loc(), diagnostics.ErrInvalidAssignment, "assignment to non-object")
		return &ErrorStmt{Location: at(loc)}
	}

	if rt != ref.Referent() {
		b.report(diagnostics.TypeMismatch(rhs.Loc(), "assigned value", ref.Referent(), rt))
		return &ErrorStmt{Location: at(loc)}
	}
	return &AssignStmt{Lhs: lhs, Rhs: rhs, Location: at(loc)}
}

// checkCondition reports a condition whose value type is not bool. It is
// false for error conditions as well.
func (b *Builder) checkCondition(cond Expression) bool {
	t := ExprType(cond)
	if types.IsError(t) {
		return false
	}
	if t != types.Bool() {
		b.errorf(cond.Loc(), diagnostics.ErrInvalidCondition, "expression does not have type 'bool'")
		return false
	}
	return true
}

func (b *Builder) MakeIfThen(loc *source.Location, cond Expression, then Statement) Statement {
	if !b.checkCondition(cond) || IsError(then) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &IfThenStmt{Cond: cond, Then: then, Location: at(loc)}
}

func (b *Builder) MakeIfElse(loc *source.Location, cond Expression, then, els Statement) Statement {
	if !b.checkCondition(cond) || IsError(then) || IsError(els) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &IfElseStmt{Cond: cond, Then: then, Else: els, Location: at(loc)}
}

func (b *Builder) MakeWhile(loc *source.Location, cond Expression, body Statement) Statement {
	if !b.checkCondition(cond) || IsError(body) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &WhileStmt{Cond: cond, Body: body, Location: at(loc)}
}

func (b *Builder) MakeDo(loc *source.Location, body Statement, cond Expression) Statement {
	if !b.checkCondition(cond) || IsError(body) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &DoStmt{Body: body, Cond: cond, Location: at(loc)}
}

// MakeReturn builds a return. The result is checked against the function's
// return type by CheckDefinition.
func (b *Builder) MakeReturn(loc *source.Location, result Expression) Statement {
	if result != nil && IsError(result) {
		return &ErrorStmt{Location: at(loc)}
	}
	return &ReturnStmt{Result: result, Location: at(loc)}
}

func (b *Builder) MakeBlock(loc *source.Location, stmts []Statement) Statement {
	for _, s := range stmts {
		if IsError(s) {
			return &ErrorStmt{Location: at(loc)}
		}
	}
	return &BlockStmt{Stmts: stmts, Location: at(loc)}
}
