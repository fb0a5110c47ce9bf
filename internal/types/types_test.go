package types

import (
	"errors"
	"testing"
)

func TestBuiltinSingletons(t *testing.T) {
	r := NewRegistry()
	if r.Void() != Void() || r.Bool() != Bool() || r.Int() != Int() {
		t.Error("Expected registry builtins to be the package singletons")
	}
	if Int().(*IntType).Precision != 32 {
		t.Errorf("Expected int precision 32, got %d", Int().(*IntType).Precision)
	}
}

func TestFunctionTypesAreUniqued(t *testing.T) {
	r := NewRegistry()
	t1 := r.Function([]Type{Int(), Int()}, Bool())
	t2 := r.Function([]Type{Int(), Int()}, Bool())
	t3 := r.Function([]Type{Int()}, Bool())

	if t1 != t2 {
		t.Error("Expected identical instances for (int, int) -> bool")
	}
	if t1 == t3 {
		t.Error("Expected distinct instances for different parameter lists")
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 canonical types, got %d", r.Len())
	}
}

func TestFunctionParamsAreCopied(t *testing.T) {
	r := NewRegistry()
	params := []Type{Int(), Bool()}
	fn := r.Function(params, Void()).(*FunctionType)
	params[0] = Bool()

	if fn.Params()[0] != Int() {
		t.Error("Expected canonical type to be unaffected by caller's slice")
	}
	if r.Function([]Type{Int(), Bool()}, Void()) != fn {
		t.Error("Expected lookup to still find the original instance")
	}
}

func TestReferenceTypes(t *testing.T) {
	r := NewRegistry()

	ri, err := r.Reference(Int())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	again, _ := r.Reference(Int())
	if ri != again {
		t.Error("Expected ref int to be uniqued")
	}

	collapsed, err := r.Reference(ri)
	if err != nil || collapsed != ri {
		t.Error("Expected ref ref int to collapse to ref int")
	}

	bad, err := r.Reference(Void())
	if !errors.Is(err, ErrVoidReference) {
		t.Errorf("Expected ErrVoidReference, got %v", err)
	}
	if !IsError(bad) {
		t.Errorf("Expected error type for ref void, got %s", bad)
	}

	propagated, err := r.Reference(Error())
	if err != nil || !IsError(propagated) {
		t.Error("Expected ref <error> to yield <error> silently")
	}
}

func TestErrorComponentsPropagate(t *testing.T) {
	r := NewRegistry()
	if !IsError(r.Function([]Type{Error()}, Int())) {
		t.Error("Expected error parameter to yield error type")
	}
	if !IsError(r.Function(nil, Error())) {
		t.Error("Expected error return to yield error type")
	}
	if r.Len() != 0 {
		t.Errorf("Expected no canonical types to be created, got %d", r.Len())
	}
}

func TestTypeStrings(t *testing.T) {
	r := NewRegistry()
	ri, _ := r.Reference(Int())
	tests := []struct {
		typ  Type
		want string
	}{
		{Void(), "void"},
		{Bool(), "bool"},
		{Int(), "int"},
		{Error(), "<error>"},
		{ri, "ref int"},
		{r.Function(nil, Void()), "() -> void"},
		{r.Function([]Type{Int(), Int()}, Bool()), "(int, int) -> bool"},
		{r.Function([]Type{r.Function([]Type{Int()}, Int())}, ri), "((int) -> int) -> ref int"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestDecay(t *testing.T) {
	r := NewRegistry()
	rb, _ := r.Reference(Bool())
	if Decay(rb) != Bool() {
		t.Error("Expected ref bool to decay to bool")
	}
	if Decay(Int()) != Int() {
		t.Error("Expected int to decay to itself")
	}
	if !IsObject(Decay(rb)) || IsObject(Void()) || IsObject(r.Function(nil, Int())) {
		t.Error("Unexpected IsObject result")
	}
}
