package scope

import (
	"github.com/asutton/beaker-old/internal/frontend/ast"
)

// Environment maps each name to the head of its binding chain
type Environment map[string]*Binding

// Stack is the scope state of one compilation. It must not be shared
// between concurrent compilations.
type Stack struct {
	env     Environment
	current *Scope
	depth   int
}

// NewStack returns a stack holding only the global scope.
func NewStack() *Stack {
	s := &Stack{env: make(Environment)}
	s.Enter(Global)
	return s
}

// Current returns the innermost live scope.
func (s *Stack) Current() *Scope {
	return s.current
}

// Depth returns the number of live scopes.
func (s *Stack) Depth() int {
	return s.depth
}

// Enter pushes a new scope of kind k.
func (s *Stack) Enter(k Kind) *Scope {
	s.current = &Scope{Kind: k, Parent: s.current}
	s.depth++
	return s.current
}

// Leave pops the innermost scope. Every name it bound is restored to its
// previous binding, or removed when it had none.
func (s *Stack) Leave() {
	sc := s.current
	if sc == nil {
		panic("scope: leave with no live scope")
	}
	for i := len(sc.names) - 1; i >= 0; i-- {
		name := sc.names[i]
		head := s.env[name]
		if head.Prev == nil {
			delete(s.env, name)
		} else {
			s.env[name] = head.Prev
		}
	}
	s.current = sc.Parent
	s.depth--
}

// Declare binds name to decl in the current scope. Shadowing an outer
// binding is allowed; a second binding in the same scope fails with a
// *RedeclarationError and leaves the first one intact.
func (s *Stack) Declare(name string, decl ast.DeclID) error {
	head := s.env[name]
	if head != nil && head.Scope == s.current {
		return &RedeclarationError{Name: name, Previous: head.Decl}
	}
	s.env[name] = &Binding{Decl: decl, Scope: s.current, Prev: head}
	s.current.names = append(s.current.names, name)
	return nil
}

// Lookup returns the innermost live declaration of name.
func (s *Stack) Lookup(name string) (ast.DeclID, bool) {
	if head := s.env[name]; head != nil {
		return head.Decl, true
	}
	return ast.NoDecl, false
}

// Binding returns the head of name's chain, or nil.
func (s *Stack) Binding(name string) *Binding {
	return s.env[name]
}
