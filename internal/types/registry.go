package types

import (
	"errors"
	"slices"
	"sync"
)

// ErrVoidReference is returned when a reference to void is requested.
var ErrVoidReference = errors.New("forming a reference to 'void'")

// Registry canonicalizes function and reference types. Each distinct shape
// is created once and returned on every later request, so callers can
// compare types by identity. Both sets are kept sorted by Compare.
type Registry struct {
	mu         sync.Mutex
	functions  []*FunctionType
	references []*ReferenceType
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Void() Type { return voidType }
func (r *Registry) Bool() Type { return boolType }
func (r *Registry) Int() Type  { return intType }

// Function returns the unique type (params...) -> ret. If any component is
// the error marker the result is the error marker.
func (r *Registry) Function(params []Type, ret Type) Type {
	if AnyError(ret) || AnyError(params...) {
		return errorType
	}

	key := &FunctionType{params: params, ret: ret}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, found := slices.BinarySearchFunc(r.functions, key, func(e, k *FunctionType) int {
		return Compare(e, k)
	})
	if found {
		return r.functions[i]
	}
	key.params = slices.Clone(params)
	r.functions = slices.Insert(r.functions, i, key)
	return key
}

// Reference returns the unique type ref t. A reference to a reference
// collapses to the inner reference. A reference to void is rejected with
// ErrVoidReference and the error marker.
func (r *Registry) Reference(t Type) (Type, error) {
	switch {
	case IsError(t):
		return errorType, nil
	case IsVoid(t):
		return errorType, ErrVoidReference
	case IsReference(t):
		return t, nil
	}

	key := &ReferenceType{referent: t}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, found := slices.BinarySearchFunc(r.references, key, func(e, k *ReferenceType) int {
		return Compare(e, k)
	})
	if found {
		return r.references[i], nil
	}
	r.references = slices.Insert(r.references, i, key)
	return key, nil
}

// Len returns the number of canonical composite types created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.functions) + len(r.references)
}
