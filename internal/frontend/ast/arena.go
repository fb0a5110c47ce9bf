package ast

// DeclID is a handle to a declaration owned by an Arena. Identifier
// expressions refer to their declaration through it.
type DeclID int32

// NoDecl is the handle of no declaration.
const NoDecl DeclID = -1

// Arena owns every declaration of a translation unit. Declarations are
// never removed, so a handle stays valid for the arena's lifetime.
type Arena struct {
	decls []Declaration
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) next() DeclID {
	return DeclID(len(a.decls))
}

func (a *Arena) add(d Declaration) {
	a.decls = append(a.decls, d)
}

// Get returns the declaration for id, or nil for NoDecl or an unknown id.
func (a *Arena) Get(id DeclID) Declaration {
	if id < 0 || int(id) >= len(a.decls) {
		return nil
	}
	return a.decls[id]
}

// Len returns the number of declarations.
func (a *Arena) Len() int {
	return len(a.decls)
}
