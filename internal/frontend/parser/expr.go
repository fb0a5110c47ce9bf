package parser

import (
	"fmt"
	"strconv"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
)

// binaryLevels lists the infix operators from lowest to highest
// precedence. Every level is left associative.
var binaryLevels = []map[tokens.TOKEN]ast.BinaryOp{
	{tokens.OR_TOKEN: ast.LogicalOr},
	{tokens.AND_TOKEN: ast.LogicalAnd},
	{tokens.BIT_OR_TOKEN: ast.BitOr},
	{tokens.BIT_XOR_TOKEN: ast.BitXor},
	{tokens.BIT_AND_TOKEN: ast.BitAnd},
	{tokens.DOUBLE_EQUAL_TOKEN: ast.Eq, tokens.NOT_EQUAL_TOKEN: ast.Ne},
	{
		tokens.LESS_TOKEN:          ast.Lt,
		tokens.GREATER_TOKEN:       ast.Gt,
		tokens.LESS_EQUAL_TOKEN:    ast.Le,
		tokens.GREATER_EQUAL_TOKEN: ast.Ge,
	},
	{tokens.SHL_TOKEN: ast.Shl, tokens.SHR_TOKEN: ast.Shr},
	{tokens.PLUS_TOKEN: ast.Add, tokens.MINUS_TOKEN: ast.Sub},
	{tokens.MUL_TOKEN: ast.Mul, tokens.DIV_TOKEN: ast.Div, tokens.MOD_TOKEN: ast.Rem},
}

var unaryOps = map[tokens.TOKEN]ast.UnaryOp{
	tokens.PLUS_TOKEN:    ast.Pos,
	tokens.MINUS_TOKEN:   ast.Neg,
	tokens.BIT_NOT_TOKEN: ast.Compl,
	tokens.NOT_TOKEN:     ast.Not,
}

// Limit recursion depth on pathological inputs like "------...x"
const maxUnaryDepth = 100

// ParseExpr parses one expression.
func (p *Parser) ParseExpr() ast.Expression {
	return p.parseBinary(0)
}

// parseBinary parses the operators of one precedence level, folding to the
// left: the operand is parsed at the next level up, then each operator of
// this level and its right operand combine with what was parsed so far.
func (p *Parser) parseBinary(level int) ast.Expression {
	if level == len(binaryLevels) {
		return p.parseUnary(0)
	}

	left := p.parseBinary(level + 1)
	for {
		op, ok := binaryLevels[level][p.peek().Kind]
		if !ok {
			return left
		}
		p.advance()
		right := p.parseBinary(level + 1)
		left = p.build.MakeBinary(source.Span(left.Loc(), right.Loc()), op, left, right)
	}
}

func (p *Parser) parseUnary(depth int) ast.Expression {
	op, ok := unaryOps[p.peek().Kind]
	if !ok {
		return p.parsePostfix()
	}

	if depth >= maxUnaryDepth {
		p.fail(diagnostics.ErrInvalidExpression, fmt.Sprintf("too many nested unary operators (maximum %d)", maxUnaryDepth))
		return &ast.ErrorExpr{Location: *p.tokenLoc(p.peek())}
	}

	start := p.advance().Start
	x := p.parseUnary(depth + 1)
	return p.build.MakeUnary(source.NewLocation(&p.filepath, &start, x.Loc().End), op, x)
}

// parsePostfix parses calls: primary ('(' [expr {',' expr}] ')')*
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for p.match(tokens.OPEN_PAREN) {
		expr = p.parseCallExpr(expr)
	}
	return expr
}

func (p *Parser) parseCallExpr(fn ast.Expression) ast.Expression {
	p.advance() // consume '('

	args := []ast.Expression{}
	if !p.match(tokens.CLOSE_PAREN) {
		args = append(args, p.ParseExpr())
		for p.accept(tokens.COMMA_TOKEN) {
			args = append(args, p.ParseExpr())
		}
	}
	p.expect(tokens.CLOSE_PAREN)

	return p.build.MakeCall(p.makeLocation(*fn.Loc().Start), fn, args)
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	loc := p.tokenLoc(tok)

	switch tok.Kind {
	case tokens.INTEGER_TOKEN:
		p.advance()
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			p.diag.Add(
				diagnostics.NewError(fmt.Sprintf("integer literal '%s' is out of range", tok.Value)).
					WithCode(diagnostics.ErrInvalidExpression).
					WithPrimaryLabel(loc, ""),
			)
			return &ast.ErrorExpr{Location: *loc}
		}
		return p.build.MakeInt(loc, v)

	case tokens.TRUE_TOKEN, tokens.FALSE_TOKEN:
		p.advance()
		return p.build.MakeBool(loc, tok.Kind == tokens.TRUE_TOKEN)

	case tokens.IDENTIFIER_TOKEN:
		p.advance()
		id, ok := p.scopes.Lookup(tok.Value)
		if !ok {
			p.diag.Add(diagnostics.UndefinedSymbol(loc, tok.Value))
			return &ast.ErrorExpr{Location: *loc}
		}
		return p.build.MakeIdentifier(loc, id)

	case tokens.OPEN_PAREN:
		p.advance()
		expr := p.ParseExpr()
		p.expect(tokens.CLOSE_PAREN)
		return expr
	}

	p.fail(diagnostics.ErrInvalidExpression, "invalid primary-expression")
	return &ast.ErrorExpr{Location: *loc}
}
