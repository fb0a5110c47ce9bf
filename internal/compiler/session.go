package compiler

import (
	"fmt"
	"strings"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/frontend/ast"
	"github.com/asutton/beaker-old/internal/frontend/lexer"
	"github.com/asutton/beaker-old/internal/frontend/parser"
	"github.com/asutton/beaker-old/internal/semantics/consteval"
	"github.com/asutton/beaker-old/internal/semantics/scope"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
)

// Session evaluates input one line at a time. Declarations made on earlier
// lines stay visible to later ones.
type Session struct {
	opts   *Options
	diag   *diagnostics.DiagnosticBag
	build  *ast.Builder
	scopes *scope.Stack
	decls  []ast.Declaration
	lines  int
}

// NewSession starts an empty session. Diagnostics go to opts.Stderr.
func NewSession(opts *Options) *Session {
	diag := diagnostics.NewDiagnosticBag()
	return &Session{
		opts:   opts,
		diag:   diag,
		build:  NewBuilder(opts, diag),
		scopes: scope.NewStack(),
	}
}

// Decls returns every declaration entered so far.
func (s *Session) Decls() []ast.Declaration {
	return s.decls
}

// Eval handles one input. Declarations are bound and echoed in tree form;
// anything else is parsed as an expression, reduced and evaluated.
// Diagnostics are rendered and reported by a false result.
func (s *Session) Eval(src string) (string, bool) {
	s.diag.Clear()
	s.lines++

	file := source.NewFile(fmt.Sprintf("<repl:%d>", s.lines), src)
	s.diag.AddSource(file)
	toks := lexer.New(file.Name, file.Content, s.diag).Tokenize()
	p := parser.New(toks, file.Name, s.build, s.scopes)

	var out string
	switch toks[0].Kind {
	case tokens.EOF_TOKEN:
		return "", !s.diag.HasErrors()
	case tokens.VAR_TOKEN, tokens.DEF_TOKEN:
		out = s.declare(p)
	default:
		out = s.evaluate(p)
	}

	if s.diag.HasErrors() {
		s.diag.Emit(s.opts.stderr())
		return "", false
	}
	return out, true
}

func (s *Session) declare(p *parser.Parser) string {
	unit := p.ParseUnit()
	s.decls = append(s.decls, unit.Decls...)
	printed := make([]string, len(unit.Decls))
	for i, d := range unit.Decls {
		printed[i] = ast.Print(d)
	}
	return strings.Join(printed, "\n")
}

func (s *Session) evaluate(p *parser.Parser) string {
	e := p.ParseExpr()
	if !p.ExpectEnd() || s.diag.HasErrors() {
		return ""
	}
	e = consteval.Reduce(s.build, e)
	v := consteval.Evaluate(e, s.diag)
	return consteval.Format(v, e.Type())
}

// Incomplete reports whether src leaves a parenthesis or brace open, so
// an interactive reader should keep reading.
func Incomplete(src string) bool {
	depth := 0
	for _, tok := range lexer.New("<probe>", src, diagnostics.NewDiagnosticBag()).Tokenize() {
		switch tok.Kind {
		case tokens.OPEN_PAREN, tokens.OPEN_CURLY:
			depth++
		case tokens.CLOSE_PAREN, tokens.CLOSE_CURLY:
			depth--
		}
	}
	return depth > 0
}
