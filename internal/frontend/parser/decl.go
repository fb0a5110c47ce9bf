package parser

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/semantics/scope"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
)

// ParseDecl parses one declaration.
//
//	decl ::= var-decl | def-decl
func (p *Parser) ParseDecl() ast.Declaration {
	var decl ast.Declaration
	switch p.peek().Kind {
	case tokens.VAR_TOKEN:
		decl = p.parseVarDecl()
	case tokens.DEF_TOKEN:
		decl = p.parseFuncDecl()
	default:
		tok := p.peek()
		p.fail(diagnostics.ErrUnexpectedToken, fmt.Sprintf("expected declaration but got %s", tok))
		decl = &ast.ErrorDecl{Location: *p.tokenLoc(tok)}
	}
	p.sync()
	return decl
}

// parseName parses the declared identifier of a declaration.
func (p *Parser) parseName() (tokens.Token, bool) {
	if p.match(tokens.IDENTIFIER_TOKEN) {
		return p.advance(), true
	}
	p.fail(diagnostics.ErrExpectedToken, fmt.Sprintf("expected identifier but got %s", p.peek()))
	return p.peek(), false
}

// parseVarDecl parses a variable. The name is in scope from its declarator,
// so the initializer can already refer to it.
//
//	var-decl ::= 'var' ident ':' type ['=' expr] ';'
func (p *Parser) parseVarDecl() ast.Declaration {
	start := p.advance().Start // consume 'var'

	name, ok := p.parseName()
	if !ok {
		return &ast.ErrorDecl{Location: *p.makeLocation(start)}
	}
	p.expect(tokens.COLON_TOKEN)
	typ := p.parseType()

	h := p.build.DeclareVariable(source.NewLocation(&p.filepath, &start, &name.End), name.Value, typ)
	declared := p.declare(name.Value, h.ID(), p.tokenLoc(name))

	var init ast.Expression
	if p.accept(tokens.EQUALS_TOKEN) {
		init = p.ParseExpr()
	}
	p.expect(tokens.SEMICOLON_TOKEN)

	decl := p.build.FinishVariable(h, init)
	if !declared {
		return &ast.ErrorDecl{Location: *decl.Loc()}
	}
	return decl
}

// parseFuncDecl parses a function declaration or definition. The function
// is in scope before its body so recursive calls resolve.
//
//	def-decl ::= 'def' ident '(' [param {',' param}] ')' '->' type (block | ';')
func (p *Parser) parseFuncDecl() ast.Declaration {
	start := p.advance().Start // consume 'def'

	name, ok := p.parseName()
	if !ok {
		return &ast.ErrorDecl{Location: *p.makeLocation(start)}
	}

	params := p.parseParams()
	p.expect(tokens.ARROW_TOKEN)
	ret := p.parseType()

	h := p.build.DeclareFunction(p.makeLocation(start), name.Value, params, ret)
	declared := p.declare(name.Value, h.ID(), p.tokenLoc(name))

	// A broken signature is already reported. The body is still parsed so
	// its statements do not leak into the enclosing scope.
	broken := p.recovering
	if broken {
		p.recovering = !p.match(tokens.OPEN_CURLY)
		if p.recovering {
			return &ast.ErrorDecl{Location: h.Decl().Location}
		}
	}

	if p.accept(tokens.SEMICOLON_TOKEN) {
		if !declared {
			return &ast.ErrorDecl{Location: h.Decl().Location}
		}
		return h.Decl()
	}

	p.scopes.Enter(scope.Function)
	for _, param := range params {
		if !p.declare(param.Name, param.ID, param.Loc()) {
			declared = false
		}
	}
	body := p.parseBlock()
	p.scopes.Leave()

	decl := p.build.FinishFunction(h, body)
	if broken || !declared {
		return &ast.ErrorDecl{Location: *decl.Loc()}
	}
	return decl
}

// parseParams parses '(' [param {',' param}] ')'
//
//	param ::= ident ':' type
func (p *Parser) parseParams() []*ast.ParameterDecl {
	params := []*ast.ParameterDecl{}
	p.expect(tokens.OPEN_PAREN)
	if p.accept(tokens.CLOSE_PAREN) {
		return params
	}

	for {
		name, ok := p.parseName()
		if !ok {
			break
		}
		p.expect(tokens.COLON_TOKEN)
		typ := p.parseType()
		params = append(params, p.build.MakeParameter(p.makeLocation(name.Start), name.Value, typ))
		if !p.accept(tokens.COMMA_TOKEN) {
			break
		}
	}
	p.expect(tokens.CLOSE_PAREN)
	return params
}
