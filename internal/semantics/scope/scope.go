package scope

import (
	"errors"
	"fmt"

	"github.com/asutton/beaker-old/internal/frontend/ast"
)

// Kind classifies a lexical scope
type Kind uint8

const (
	Global   Kind = iota // the whole translation unit
	Function             // a function's parameters and body
	Local                // a block statement
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Function:
		return "function"
	case Local:
		return "local"
	default:
		return "invalid"
	}
}

// Scope is one live region of the stack. It remembers the names it bound so
// leaving it can unhook exactly those bindings.
type Scope struct {
	Kind   Kind
	Parent *Scope
	names  []string
}

// Names returns the names bound in s in declaration order.
func (s *Scope) Names() []string {
	return s.names
}

// Binding is one link of a name's chain. The head of a chain is the
// innermost live declaration of the name.
type Binding struct {
	Decl  ast.DeclID
	Scope *Scope
	Prev  *Binding
}

// ErrRedeclared is wrapped by every RedeclarationError.
var ErrRedeclared = errors.New("already declared")

// RedeclarationError reports a second declaration of Name in one scope.
type RedeclarationError struct {
	Name     string
	Previous ast.DeclID
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("'%s' is already declared", e.Name)
}

func (e *RedeclarationError) Unwrap() error { return ErrRedeclared }
