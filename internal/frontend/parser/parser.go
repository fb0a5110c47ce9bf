package parser

import (
	"errors"
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/semantics/scope"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
)

// Parser turns a token list into checked AST nodes. Every node is built
// through the ast.Builder, so type errors are reported while parsing.
type Parser struct {
	tokens   []tokens.Token
	current  int // current position in tokens
	filepath string
	build    *ast.Builder
	scopes   *scope.Stack
	diag     *diagnostics.DiagnosticBag

	// recovering is set after an unrecoverable syntax error. Further syntax
	// errors are suppressed until the enclosing statement or declaration
	// skips to its terminator.
	recovering bool
}

// New creates a parser over toks. The token list must end with an end of
// file token. scopes holds the names visible to the parsed code and
// survives the parser, so declarations persist across parsers sharing it.
func New(toks []tokens.Token, filepath string, b *ast.Builder, scopes *scope.Stack) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF_TOKEN {
		panic("parser: token list must end with end of file")
	}
	return &Parser{
		tokens:   toks,
		filepath: filepath,
		build:    b,
		scopes:   scopes,
		diag:     b.Diagnostics(),
	}
}

// Parse parses a translation unit in a fresh global scope.
func Parse(toks []tokens.Token, filepath string, b *ast.Builder) *ast.Unit {
	return New(toks, filepath, b, scope.NewStack()).ParseUnit()
}

// ParseUnit parses declarations until end of file.
//
//	unit ::= decl*
func (p *Parser) ParseUnit() *ast.Unit {
	unit := &ast.Unit{Filename: p.filepath, Arena: p.build.Arena}
	for !p.AtEnd() {
		start := p.current
		decl := p.ParseDecl()
		unit.Decls = append(unit.Decls, decl)
		if p.current == start {
			p.advance()
		}
	}
	return unit
}

// AtEnd reports whether only the end of file token is left.
func (p *Parser) AtEnd() bool {
	return p.peek().Kind == tokens.EOF_TOKEN
}

// Helper methods

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.tokens[p.current]
	if tok.Kind != tokens.EOF_TOKEN {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// accept consumes the next token if it has the given kind.
func (p *Parser) accept(kind tokens.TOKEN) bool {
	if p.match(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind. A missing token is reported
// and parsing continues as if it were present. Nothing is consumed while
// recovering so the terminator is left for sync.
func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, bool) {
	if p.recovering {
		return p.peek(), false
	}
	if p.match(kind) {
		return p.advance(), true
	}

	if kind == tokens.SEMICOLON_TOKEN {
		// Point just past the previous token.
		prev := p.previous()
		loc := source.NewLocation(&p.filepath, &prev.End, &prev.End)
		p.diag.Add(
			diagnostics.NewError("missing ';'").
				WithCode(diagnostics.ErrMissingSemiCol).
				WithPrimaryLabel(loc, "add semicolon here"),
		)
		// Leftovers of the broken statement are skipped up to its ';'.
		if !resumes(p.peek().Kind) {
			p.recovering = true
		}
		return p.peek(), false
	}

	tok := p.peek()
	p.diag.Add(
		diagnostics.NewError(fmt.Sprintf("expected '%s' but got %s", kind, tok)).
			WithCode(diagnostics.ErrExpectedToken).
			WithPrimaryLabel(p.tokenLoc(tok), ""),
	)
	return tok, false
}

// resumes reports whether parsing can carry on at a token of kind after a
// missing ';'.
func resumes(kind tokens.TOKEN) bool {
	switch kind {
	case tokens.VAR_TOKEN, tokens.DEF_TOKEN, tokens.IF_TOKEN, tokens.WHILE_TOKEN,
		tokens.DO_TOKEN, tokens.RETURN_TOKEN, tokens.OPEN_CURLY, tokens.CLOSE_CURLY,
		tokens.SEMICOLON_TOKEN, tokens.EOF_TOKEN:
		return true
	}
	return false
}

// fail reports an unrecoverable syntax error at the next token and enters
// recovery.
func (p *Parser) fail(code, msg string) {
	if !p.recovering {
		p.diag.Add(
			diagnostics.NewError(msg).
				WithCode(code).
				WithPrimaryLabel(p.tokenLoc(p.peek()), ""),
		)
	}
	p.recovering = true
}

// sync skips to the end of the broken statement when a syntax error
// occurred inside it. A ';' is consumed; a '}' and end of file are left for
// the enclosing construct.
func (p *Parser) sync() {
	if !p.recovering {
		return
	}
	for !p.match(tokens.SEMICOLON_TOKEN, tokens.CLOSE_CURLY, tokens.EOF_TOKEN) {
		p.advance()
	}
	p.accept(tokens.SEMICOLON_TOKEN)
	p.recovering = false
}

func (p *Parser) tokenLoc(tok tokens.Token) *source.Location {
	return tok.Location(&p.filepath)
}

// makeLocation creates a source location from start to the end of the last
// consumed token.
func (p *Parser) makeLocation(start source.Position) *source.Location {
	end := p.previous().End
	return source.NewLocation(&p.filepath, &start, &end)
}

// declare binds name in the current scope, reporting a redeclaration.
func (p *Parser) declare(name string, id ast.DeclID, loc *source.Location) bool {
	err := p.scopes.Declare(name, id)
	if err == nil {
		return true
	}
	var prevLoc *source.Location
	var re *scope.RedeclarationError
	if errors.As(err, &re) {
		if prev := p.build.Arena.Get(re.Previous); prev != nil {
			prevLoc = prev.Loc()
		}
	}
	p.diag.Add(diagnostics.RedeclaredSymbol(loc, prevLoc, name))
	return false
}

// ExpectEnd reports any tokens left before end of file.
func (p *Parser) ExpectEnd() bool {
	if p.AtEnd() {
		return true
	}
	p.fail(diagnostics.ErrUnexpectedToken, fmt.Sprintf("unexpected %s after expression", p.peek()))
	return false
}
