package diagnostics

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/source"
)

// Common diagnostic builders shared by the parser and the AST builder

// UndefinedSymbol creates a diagnostic for a name with no visible declaration
func UndefinedSymbol(loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("unresolved symbol '%s'", name)).
		WithCode(ErrUndefinedSymbol).
		WithPrimaryLabel(loc, "not found in this scope")
}

// RedeclaredSymbol creates a diagnostic for a second declaration in one scope
func RedeclaredSymbol(newLoc, prevLoc *source.Location, name string) *Diagnostic {
	d := NewError(fmt.Sprintf("'%s' is already declared", name)).
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(newLoc, "redeclared here")
	if prevLoc != nil {
		return d.WithSecondaryLabel(prevLoc, "previous declaration here")
	}
	return d.WithNote(fmt.Sprintf("'%s' was declared earlier in this scope", name))
}

// TypeMismatch creates a diagnostic for "type mismatch in <what> (expected 'T' but got 'U')"
func TypeMismatch(loc *source.Location, what string, expected, got fmt.Stringer) *Diagnostic {
	return NewError(fmt.Sprintf("type mismatch in %s (expected '%s' but got '%s')", what, expected, got)).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(loc, fmt.Sprintf("has type '%s'", got))
}

// InvalidOperand creates a diagnostic for an operand an operator cannot accept
func InvalidOperand(loc *source.Location, typ fmt.Stringer) *Diagnostic {
	return NewError(fmt.Sprintf("invalid operand of type '%s'", typ)).
		WithCode(ErrInvalidOperand).
		WithPrimaryLabel(loc, "")
}

// WrongArgumentCount creates a diagnostic for a call with the wrong number of arguments
func WrongArgumentCount(loc *source.Location, expected, found int) *Diagnostic {
	amount := "too few"
	if found > expected {
		amount = "too many"
	}
	return NewError(fmt.Sprintf("%s arguments (expected %d but got %d)", amount, expected, found)).
		WithCode(ErrWrongArgumentCount).
		WithPrimaryLabel(loc, fmt.Sprintf("expected %d argument(s)", expected))
}
