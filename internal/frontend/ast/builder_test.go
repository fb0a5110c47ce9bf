package ast

import (
	"strings"
	"testing"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/types"
)

func newTestBuilder() (*Builder, *diagnostics.DiagnosticBag) {
	diag := diagnostics.NewDiagnosticBag()
	return NewBuilder(types.NewRegistry(), NewArena(), diag), diag
}

func expectMessage(t *testing.T, diag *diagnostics.DiagnosticBag, want string) {
	t.Helper()
	for _, m := range diag.Messages() {
		if strings.Contains(m, want) {
			return
		}
	}
	t.Errorf("Expected a diagnostic containing %q, got %v", want, diag.Messages())
}

func expectClean(t *testing.T, diag *diagnostics.DiagnosticBag) {
	t.Helper()
	if diag.HasErrors() {
		t.Errorf("Expected no diagnostics, got %v", diag.Messages())
	}
}

func TestMakeConstants(t *testing.T) {
	b, diag := newTestBuilder()

	if c := b.MakeInt(nil, 42); c.Value != 42 || c.Type() != types.Int() {
		t.Errorf("Expected int 42, got %s", Print(c))
	}
	if c := b.MakeBool(nil, true); c.Value != 1 || c.Type() != types.Bool() {
		t.Errorf("Expected bool true, got %s", Print(c))
	}
	if c := b.MakeConstant(nil, 7, types.Bool()); Print(c) != "true" {
		t.Errorf("Expected nonzero bool constant to print true, got %s", Print(c))
	}
	if c := b.MakeConstant(nil, 7, types.Void()); !IsError(c) {
		t.Errorf("Expected error for void constant, got %s", Print(c))
	}
	expectClean(t, diag)
}

func TestMakeBinary(t *testing.T) {
	tests := []struct {
		name    string
		op      BinaryOp
		x, y    func(b *Builder) Expression
		want    types.Type
		message string
	}{
		{"add ints", Add, intLit(1), intLit(2), types.Int(), ""},
		{"shift ints", Shl, intLit(1), intLit(4), types.Int(), ""},
		{"compare ints", Lt, intLit(1), intLit(2), types.Bool(), ""},
		{"compare bools", Eq, boolLit(true), boolLit(false), types.Bool(), ""},
		{"logical and", LogicalAnd, boolLit(true), boolLit(false), types.Bool(), ""},
		{"add int and bool", Add, intLit(1), boolLit(true), nil, "invalid operand of type 'bool'"},
		{"logical or on ints", LogicalOr, intLit(1), intLit(0), nil, "invalid operand of type 'int'"},
		{"compare int and bool", Ne, intLit(1), boolLit(true), nil, "type mismatch in comparison"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, diag := newTestBuilder()
			e := b.MakeBinary(nil, tt.op, tt.x(b), tt.y(b))
			if tt.want == nil {
				if !IsError(e) {
					t.Errorf("Expected error node, got %s", Print(e))
				}
				expectMessage(t, diag, tt.message)
				return
			}
			if e.Type() != tt.want {
				t.Errorf("Expected type %s, got %s", tt.want, e.Type())
			}
			expectClean(t, diag)
		})
	}
}

func intLit(v int64) func(b *Builder) Expression {
	return func(b *Builder) Expression { return b.MakeInt(nil, v) }
}

func boolLit(v bool) func(b *Builder) Expression {
	return func(b *Builder) Expression { return b.MakeBool(nil, v) }
}

func TestErrorOperandsAreSilent(t *testing.T) {
	b, diag := newTestBuilder()
	bad := b.MakeBinary(nil, Add, b.MakeInt(nil, 1), b.MakeBool(nil, true))
	if diag.ErrorCount() != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", diag.ErrorCount())
	}

	e := b.MakeBinary(nil, Mul, bad, b.MakeInt(nil, 2))
	e = b.MakeUnary(nil, Neg, e)
	e = b.MakeCall(nil, e, nil)
	if !IsError(e) {
		t.Errorf("Expected error to propagate, got %s", Print(e))
	}
	if diag.ErrorCount() != 1 {
		t.Errorf("Expected no new diagnostics, got %v", diag.Messages())
	}
}

func TestMakeUnary(t *testing.T) {
	b, diag := newTestBuilder()

	if e := b.MakeUnary(nil, Neg, b.MakeInt(nil, 3)); e.Type() != types.Int() {
		t.Errorf("Expected -3 to have type int, got %s", e.Type())
	}
	if e := b.MakeUnary(nil, Not, b.MakeBool(nil, false)); e.Type() != types.Bool() {
		t.Errorf("Expected !false to have type bool, got %s", e.Type())
	}
	expectClean(t, diag)

	if e := b.MakeUnary(nil, Compl, b.MakeBool(nil, true)); !IsError(e) {
		t.Errorf("Expected error for ~true, got %s", Print(e))
	}
	expectMessage(t, diag, "invalid operand of type 'bool'")
}

func TestIdentifierHasReferenceType(t *testing.T) {
	b, diag := newTestBuilder()
	h := b.DeclareVariable(nil, "x", types.Int())
	b.FinishVariable(h, b.MakeInt(nil, 1))

	id := b.MakeIdentifier(nil, h.ID())
	ref, ok := id.Type().(*types.ReferenceType)
	if !ok || ref.Referent() != types.Int() {
		t.Fatalf("Expected type ref int, got %s", id.Type())
	}
	if ExprType(id) != types.Int() {
		t.Errorf("Expected value type int, got %s", ExprType(id))
	}

	// Identifiers decay in arithmetic.
	if e := b.MakeBinary(nil, Add, id, b.MakeInt(nil, 1)); e.Type() != types.Int() {
		t.Errorf("Expected x + 1 to have type int, got %s", e.Type())
	}
	expectClean(t, diag)
}

func TestVoidVariableReference(t *testing.T) {
	b, diag := newTestBuilder()
	h := b.DeclareVariable(nil, "v", types.Void())
	b.FinishVariable(h, nil)

	if e := b.MakeIdentifier(nil, h.ID()); !IsError(e) {
		t.Errorf("Expected error naming a void variable, got %s", Print(e))
	}
	expectMessage(t, diag, "forming a reference to 'void'")
}

func TestFinishVariable(t *testing.T) {
	b, diag := newTestBuilder()

	h := b.DeclareVariable(nil, "x", types.Int())
	d := b.FinishVariable(h, b.MakeBool(nil, true))
	if !IsError(d) {
		t.Errorf("Expected error declaration, got %s", Print(d))
	}
	expectMessage(t, diag, "type mismatch in initializer (expected 'int' but got 'bool')")

	h = b.DeclareVariable(nil, "y", types.Bool())
	d = b.FinishVariable(h, nil)
	if v, ok := d.(*VariableDecl); !ok || v.Init != nil {
		t.Errorf("Expected uninitialized variable, got %s", Print(d))
	}
}

func TestFinishVariableFolds(t *testing.T) {
	b, _ := newTestBuilder()
	folded := 0
	b.Fold = func(e Expression) Expression {
		folded++
		return b.MakeInt(e.Loc(), 3)
	}

	h := b.DeclareVariable(nil, "x", types.Int())
	d := b.FinishVariable(h, b.MakeBinary(nil, Add, b.MakeInt(nil, 1), b.MakeInt(nil, 2)))
	if folded != 1 {
		t.Errorf("Expected fold to run once, ran %d times", folded)
	}
	if got := Print(d); got != "(var x int 3)" {
		t.Errorf("Expected (var x int 3), got %s", got)
	}
}

func TestFinishTwicePanics(t *testing.T) {
	b, _ := newTestBuilder()

	t.Run("variable", func(t *testing.T) {
		h := b.DeclareVariable(nil, "x", types.Int())
		b.FinishVariable(h, nil)
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on second finish")
			}
		}()
		b.FinishVariable(h, nil)
	})

	t.Run("function", func(t *testing.T) {
		h := b.DeclareFunction(nil, "f", nil, types.Void())
		b.FinishFunction(h, b.MakeBlock(nil, nil))
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on second finish")
			}
		}()
		b.FinishFunction(h, b.MakeBlock(nil, nil))
	})
}

func declareUnary(b *Builder) FunctionHandle {
	a := b.MakeParameter(nil, "a", types.Int())
	return b.DeclareFunction(nil, "f", []*ParameterDecl{a}, types.Bool())
}

func TestMakeCall(t *testing.T) {
	b, diag := newTestBuilder()
	f := declareUnary(b)
	fn := b.MakeIdentifier(nil, f.ID())

	call := b.MakeCall(nil, fn, []Expression{b.MakeInt(nil, 1)})
	if call.Type() != types.Bool() {
		t.Errorf("Expected f(1) to have type bool, got %s", call.Type())
	}
	if got := Print(call); got != "(call f 1)" {
		t.Errorf("Expected (call f 1), got %s", got)
	}
	expectClean(t, diag)

	tests := []struct {
		name    string
		args    []Expression
		message string
	}{
		{"too many", []Expression{b.MakeInt(nil, 1), b.MakeInt(nil, 2)}, "too many arguments (expected 1 but got 2)"},
		{"too few", nil, "too few arguments (expected 1 but got 0)"},
		{"wrong type", []Expression{b.MakeBool(nil, true)}, "type mismatch in argument 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag.Clear()
			if e := b.MakeCall(nil, fn, tt.args); !IsError(e) {
				t.Errorf("Expected error node, got %s", Print(e))
			}
			expectMessage(t, diag, tt.message)
		})
	}
}

func TestCallNonFunction(t *testing.T) {
	b, diag := newTestBuilder()
	h := b.DeclareVariable(nil, "x", types.Int())
	b.FinishVariable(h, nil)

	if e := b.MakeCall(nil, b.MakeIdentifier(nil, h.ID()), nil); !IsError(e) {
		t.Errorf("Expected error node, got %s", Print(e))
	}
	expectMessage(t, diag, "'x' is not callable")
}

func TestMakeAssign(t *testing.T) {
	b, diag := newTestBuilder()
	h := b.DeclareVariable(nil, "x", types.Int())
	b.FinishVariable(h, nil)
	x := b.MakeIdentifier(nil, h.ID())

	s := b.MakeAssign(nil, x, b.MakeInt(nil, 4))
	if got := Print(s); got != "(= x 4)" {
		t.Errorf("Expected (= x 4), got %s", got)
	}
	expectClean(t, diag)

	f := declareUnary(b)
	tests := []struct {
		name     string
		lhs, rhs Expression
		message  string
	}{
		{"temporary", b.MakeInt(nil, 1), b.MakeInt(nil, 2), "assignment to temporary"},
		{"function", b.MakeIdentifier(nil, f.ID()), b.MakeInt(nil, 2), "assignment to non-object"},
		{"wrong type", x, b.MakeBool(nil, true), "type mismatch in assigned value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag.Clear()
			if s := b.MakeAssign(nil, tt.lhs, tt.rhs); !IsError(s) {
				t.Errorf("Expected error statement, got %s", Print(s))
			}
			expectMessage(t, diag, tt.message)
		})
	}
}

func TestConditions(t *testing.T) {
	b, diag := newTestBuilder()
	empty := b.MakeEmpty(nil)

	if s := b.MakeWhile(nil, b.MakeBool(nil, true), empty); IsError(s) {
		t.Errorf("Expected valid while, got %s", Print(s))
	}
	expectClean(t, diag)

	stmts := []Statement{
		b.MakeIfThen(nil, b.MakeInt(nil, 1), empty),
		b.MakeIfElse(nil, b.MakeInt(nil, 1), empty, empty),
		b.MakeWhile(nil, b.MakeInt(nil, 1), empty),
		b.MakeDo(nil, empty, b.MakeInt(nil, 1)),
	}
	for _, s := range stmts {
		if !IsError(s) {
			t.Errorf("Expected error statement, got %s", Print(s))
		}
	}
	if diag.ErrorCount() != len(stmts) {
		t.Errorf("Expected %d diagnostics, got %d", len(stmts), diag.ErrorCount())
	}
	expectMessage(t, diag, "expression does not have type 'bool'")
}

func TestErrorChildrenPropagate(t *testing.T) {
	b, diag := newTestBuilder()
	bad := &ErrorStmt{}

	stmts := []Statement{
		b.MakeBlock(nil, []Statement{b.MakeEmpty(nil), bad}),
		b.MakeIfThen(nil, b.MakeBool(nil, true), bad),
		b.MakeExprStmt(nil, &ErrorExpr{}),
		b.MakeDeclStmt(nil, &ErrorDecl{}),
		b.MakeReturn(nil, &ErrorExpr{}),
	}
	for _, s := range stmts {
		if !IsError(s) {
			t.Errorf("Expected error statement, got %s", Print(s))
		}
	}
	expectClean(t, diag)
}
