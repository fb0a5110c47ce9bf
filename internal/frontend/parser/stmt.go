package parser

import (
	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/semantics/scope"
	"github.com/asutton/beaker-old/internal/tokens"
)

// parseStmt parses a statement. A syntax error inside it skips to its ';'.
func (p *Parser) parseStmt() ast.Statement {
	stmt := p.parseStmtKind()
	if p.recovering {
		p.sync()
		return &ast.ErrorStmt{Location: *stmt.Loc()}
	}
	return stmt
}

func (p *Parser) parseStmtKind() ast.Statement {
	tok := p.peek()

	switch tok.Kind {
	case tokens.SEMICOLON_TOKEN:
		p.advance()
		return p.build.MakeEmpty(p.tokenLoc(tok))
	case tokens.OPEN_CURLY:
		return p.parseBlock()
	case tokens.VAR_TOKEN:
		decl := p.parseVarDecl()
		return p.build.MakeDeclStmt(decl.Loc(), decl)
	case tokens.DEF_TOKEN:
		decl := p.parseFuncDecl()
		return p.build.MakeDeclStmt(decl.Loc(), decl)
	case tokens.IF_TOKEN:
		return p.parseIfStmt()
	case tokens.WHILE_TOKEN:
		return p.parseWhileStmt()
	case tokens.DO_TOKEN:
		return p.parseDoStmt()
	case tokens.RETURN_TOKEN:
		return p.parseReturnStmt()
	case tokens.ELSE_TOKEN:
		p.fail(diagnostics.ErrInvalidStatement, "'else' without a previous 'if'")
		return &ast.ErrorStmt{Location: *p.tokenLoc(tok)}
	default:
		return p.parseExprOrAssign()
	}
}

// parseBlock parses '{' stmt* '}' in a new local scope.
func (p *Parser) parseBlock() ast.Statement {
	start, _ := p.expect(tokens.OPEN_CURLY)

	p.scopes.Enter(scope.Local)
	stmts := []ast.Statement{}
	for !p.match(tokens.CLOSE_CURLY, tokens.EOF_TOKEN) {
		before := p.current
		stmts = append(stmts, p.parseStmt())
		if p.current == before {
			p.advance()
		}
	}
	p.scopes.Leave()

	p.expect(tokens.CLOSE_CURLY)
	return p.build.MakeBlock(p.makeLocation(start.Start), stmts)
}

// parseCondition parses '(' expr ')'
func (p *Parser) parseCondition() ast.Expression {
	p.expect(tokens.OPEN_PAREN)
	cond := p.ParseExpr()
	p.expect(tokens.CLOSE_PAREN)
	return cond
}

// parseIfStmt: if (cond) stmt [else stmt]
func (p *Parser) parseIfStmt() ast.Statement {
	start := p.advance().Start

	cond := p.parseCondition()
	then := p.parseStmt()
	if p.accept(tokens.ELSE_TOKEN) {
		els := p.parseStmt()
		return p.build.MakeIfElse(p.makeLocation(start), cond, then, els)
	}
	return p.build.MakeIfThen(p.makeLocation(start), cond, then)
}

// parseWhileStmt: while (cond) stmt
func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.advance().Start

	cond := p.parseCondition()
	body := p.parseStmt()
	return p.build.MakeWhile(p.makeLocation(start), cond, body)
}

// parseDoStmt: do stmt while (cond);
func (p *Parser) parseDoStmt() ast.Statement {
	start := p.advance().Start

	body := p.parseStmt()
	p.expect(tokens.WHILE_TOKEN)
	cond := p.parseCondition()
	p.expect(tokens.SEMICOLON_TOKEN)
	return p.build.MakeDo(p.makeLocation(start), body, cond)
}

// parseReturnStmt: return [expr];
func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.advance().Start

	var result ast.Expression
	if !p.match(tokens.SEMICOLON_TOKEN) {
		result = p.ParseExpr()
	}
	p.expect(tokens.SEMICOLON_TOKEN)
	return p.build.MakeReturn(p.makeLocation(start), result)
}

// parseExprOrAssign: expr; or expr = expr;
func (p *Parser) parseExprOrAssign() ast.Statement {
	start := p.peek().Start

	lhs := p.ParseExpr()
	if p.accept(tokens.EQUALS_TOKEN) {
		rhs := p.ParseExpr()
		p.expect(tokens.SEMICOLON_TOKEN)
		return p.build.MakeAssign(p.makeLocation(start), lhs, rhs)
	}

	p.expect(tokens.SEMICOLON_TOKEN)
	return p.build.MakeExprStmt(p.makeLocation(start), lhs)
}
