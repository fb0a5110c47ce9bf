package ast

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/types"
)

// CheckDefinition validates every return in body against ret and requires a
// definite return path unless ret is void. loc is the function's location.
func (b *Builder) CheckDefinition(loc *source.Location, ret types.Type, body Statement) bool {
	r := b.checkReturn(ret, body)
	if isDiagnosed(r) {
		return false
	}
	if r == nil && !types.IsVoid(ret) {
		b.errorf(loc, diagnostics.ErrMissingReturn, "no return value in non-void function")
		return false
	}
	return true
}

// checkReturn yields ret when s returns on every path, nil when it may
// complete without returning, and the error type when a return was
// diagnosed. Errors win over later results.
func (b *Builder) checkReturn(ret types.Type, s Statement) types.Type {
	switch s := s.(type) {
	case *EmptyStmt, *DeclStmt, *ExprStmt, *AssignStmt:
		return nil

	case *ReturnStmt:
		return b.checkReturnStmt(ret, s)

	case *BlockStmt:
		var result types.Type
		failed := false
		for _, child := range s.Stmts {
			r := b.checkReturn(ret, child)
			switch {
			case r == nil:
			case types.IsError(r):
				failed = true
			default:
				result = r
			}
		}
		if failed {
			return types.Error()
		}
		return result

	case *IfThenStmt:
		return b.checkReturn(ret, s.Then)

	case *IfElseStmt:
		r1 := b.checkReturn(ret, s.Then)
		r2 := b.checkReturn(ret, s.Else)
		if isDiagnosed(r1) || isDiagnosed(r2) {
			return types.Error()
		}
		if r1 != nil && r2 != nil {
			return ret
		}
		return nil

	case *WhileStmt:
		// The body may never run.
		if isDiagnosed(b.checkReturn(ret, s.Body)) {
			return types.Error()
		}
		return nil

	case *DoStmt:
		return b.checkReturn(ret, s.Body)

	case *ErrorStmt:
		return types.Error()
	}
	panic(fmt.Sprintf("unhandled statement %T", s))
}

func isDiagnosed(t types.Type) bool {
	return t != nil && types.IsError(t)
}

func (b *Builder) checkReturnStmt(ret types.Type, s *ReturnStmt) types.Type {
	if s.Result == nil {
		if !types.IsVoid(ret) {
			b.errorf(&s.Location, diagnostics.ErrMissingReturn, "no return value in non-void function")
			return types.Error()
		}
		return ret
	}

	if r, match := binds(ret, s.Result); !match {
		if types.IsVoid(ret) {
			b.errorf(s.Result.Loc(), diagnostics.ErrInvalidReturn, "returning a value from a 'void' function")
		} else {
			b.errorf(s.Result.Loc(), diagnostics.ErrInvalidReturn, "returning a value of type '%s'", r)
		}
		return types.Error()
	}
	return ret
}
