package types

import (
	"strings"
)

// Kind tags the five type constructors of the language plus the error marker.
// The declaration order is the canonical order used by Compare.
type Kind int

const (
	VoidKind Kind = iota
	BoolKind
	IntKind
	FunctionKind
	ReferenceKind
	ErrorKind
)

func (k Kind) String() string {
	switch k {
	case VoidKind:
		return "void"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FunctionKind:
		return "function"
	case ReferenceKind:
		return "reference"
	case ErrorKind:
		return "error"
	default:
		return "unknown"
	}
}

// Type is a canonical, immutable type. Values obtained from one Registry are
// uniqued, so two types are structurally equal iff they are the same pointer.
type Type interface {
	Kind() Kind
	String() string

	// isType is a marker method to prevent external implementation
	isType()
}

// VoidType is the type of expressions and functions with no value
type VoidType struct{}

func (*VoidType) Kind() Kind     { return VoidKind }
func (*VoidType) String() string { return "void" }
func (*VoidType) isType()        {}

// BoolType holds true or false
type BoolType struct{}

func (*BoolType) Kind() Kind     { return BoolKind }
func (*BoolType) String() string { return "bool" }
func (*BoolType) isType()        {}

// IntType is a two's complement integer of Precision bits
type IntType struct {
	Precision int
}

func (*IntType) Kind() Kind     { return IntKind }
func (*IntType) String() string { return "int" }
func (*IntType) isType()        {}

// FunctionType maps an ordered parameter list to a return type
type FunctionType struct {
	params []Type
	ret    Type
}

func (*FunctionType) Kind() Kind { return FunctionKind }
func (*FunctionType) isType()    {}

// Params returns the parameter types. The slice must not be modified.
func (f *FunctionType) Params() []Type { return f.params }

// Return returns the result type.
func (f *FunctionType) Return() Type { return f.ret }

func (f *FunctionType) String() string {
	parts := make([]string, len(f.params))
	for i, p := range f.params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.ret.String()
}

// ReferenceType denotes an object location holding a value of Referent
type ReferenceType struct {
	referent Type
}

func (*ReferenceType) Kind() Kind { return ReferenceKind }
func (*ReferenceType) isType()    {}

func (r *ReferenceType) Referent() Type { return r.referent }
func (r *ReferenceType) String() string { return "ref " + r.referent.String() }

// ErrorType marks a type that could not be formed. A diagnostic has already
// been issued wherever one appears.
type ErrorType struct{}

func (*ErrorType) Kind() Kind     { return ErrorKind }
func (*ErrorType) String() string { return "<error>" }
func (*ErrorType) isType()        {}
