package parser

import (
	"fmt"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/tokens"
	"github.com/asutton/beaker-old/internal/types"
)

// parseType parses a type name.
//
//	type ::= 'void' | 'bool' | 'int'
//	       | 'ref' type
//	       | '(' [type {',' type}] ')' '->' type
func (p *Parser) parseType() types.Type {
	tok := p.peek()

	switch tok.Kind {
	case tokens.VOID_TOKEN:
		p.advance()
		return p.build.Types.Void()
	case tokens.BOOL_TOKEN:
		p.advance()
		return p.build.Types.Bool()
	case tokens.INT_TOKEN:
		p.advance()
		return p.build.Types.Int()

	case tokens.REF_TOKEN:
		p.advance()
		inner := p.parseType()
		return p.build.ReferenceType(p.makeLocation(tok.Start), inner)

	case tokens.OPEN_PAREN:
		p.advance()
		params := []types.Type{}
		if !p.match(tokens.CLOSE_PAREN) {
			params = append(params, p.parseType())
			for p.accept(tokens.COMMA_TOKEN) {
				params = append(params, p.parseType())
			}
		}
		p.expect(tokens.CLOSE_PAREN)
		p.expect(tokens.ARROW_TOKEN)
		ret := p.parseType()
		return p.build.FunctionType(params, ret)
	}

	p.fail(diagnostics.ErrInvalidType, fmt.Sprintf("invalid type '%s'", tok.Value))
	return types.Error()
}
