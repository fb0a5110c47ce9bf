package lexer

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/asutton/beaker-old/internal/diagnostics"
	"github.com/asutton/beaker-old/internal/source"
	"github.com/asutton/beaker-old/internal/tokens"
)

type regexHandler func(lex *Lexer, match string)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// patterns is tried in order at the current position; the first match wins.
// Two-character operators precede their one-character prefixes.
var patterns = []regexPattern{
	{regexp.MustCompile(`^\s+`), skipHandler},                           // whitespace
	{regexp.MustCompile(`^//[^\n]*`), skipHandler},                      // line comments
	{regexp.MustCompile(`^[0-9]+`), integerHandler},                     // integer literals
	{regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler}, // identifiers and keywords
	{regexp.MustCompile(`^->`), defaultHandler(tokens.ARROW_TOKEN)},
	{regexp.MustCompile(`^<=`), defaultHandler(tokens.LESS_EQUAL_TOKEN)},
	{regexp.MustCompile(`^>=`), defaultHandler(tokens.GREATER_EQUAL_TOKEN)},
	{regexp.MustCompile(`^==`), defaultHandler(tokens.DOUBLE_EQUAL_TOKEN)},
	{regexp.MustCompile(`^!=`), defaultHandler(tokens.NOT_EQUAL_TOKEN)},
	{regexp.MustCompile(`^&&`), defaultHandler(tokens.AND_TOKEN)},
	{regexp.MustCompile(`^\|\|`), defaultHandler(tokens.OR_TOKEN)},
	{regexp.MustCompile(`^<<`), defaultHandler(tokens.SHL_TOKEN)},
	{regexp.MustCompile(`^>>`), defaultHandler(tokens.SHR_TOKEN)},
	{regexp.MustCompile(`^\{`), defaultHandler(tokens.OPEN_CURLY)},
	{regexp.MustCompile(`^\}`), defaultHandler(tokens.CLOSE_CURLY)},
	{regexp.MustCompile(`^\(`), defaultHandler(tokens.OPEN_PAREN)},
	{regexp.MustCompile(`^\)`), defaultHandler(tokens.CLOSE_PAREN)},
	{regexp.MustCompile(`^,`), defaultHandler(tokens.COMMA_TOKEN)},
	{regexp.MustCompile(`^:`), defaultHandler(tokens.COLON_TOKEN)},
	{regexp.MustCompile(`^;`), defaultHandler(tokens.SEMICOLON_TOKEN)},
	{regexp.MustCompile(`^=`), defaultHandler(tokens.EQUALS_TOKEN)},
	{regexp.MustCompile(`^\+`), defaultHandler(tokens.PLUS_TOKEN)},
	{regexp.MustCompile(`^-`), defaultHandler(tokens.MINUS_TOKEN)},
	{regexp.MustCompile(`^\*`), defaultHandler(tokens.MUL_TOKEN)},
	{regexp.MustCompile(`^/`), defaultHandler(tokens.DIV_TOKEN)},
	{regexp.MustCompile(`^%`), defaultHandler(tokens.MOD_TOKEN)},
	{regexp.MustCompile(`^&`), defaultHandler(tokens.BIT_AND_TOKEN)},
	{regexp.MustCompile(`^\|`), defaultHandler(tokens.BIT_OR_TOKEN)},
	{regexp.MustCompile(`^\^`), defaultHandler(tokens.BIT_XOR_TOKEN)},
	{regexp.MustCompile(`^~`), defaultHandler(tokens.BIT_NOT_TOKEN)},
	{regexp.MustCompile(`^!`), defaultHandler(tokens.NOT_TOKEN)},
	{regexp.MustCompile(`^<`), defaultHandler(tokens.LESS_TOKEN)},
	{regexp.MustCompile(`^>`), defaultHandler(tokens.GREATER_TOKEN)},
}

type Lexer struct {
	diagnostics *diagnostics.DiagnosticBag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  string
	FilePath    string
}

func New(filepath, content string, diag *diagnostics.DiagnosticBag) *Lexer {
	return &Lexer{
		sourceCode:  content,
		Tokens:      make([]tokens.Token, 0),
		Position:    source.Start(),
		diagnostics: diag,
		FilePath:    filepath,
	}
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, match string) {
		start := lex.Position
		lex.advance(match)
		lex.push(tokens.NewToken(token, match, start, lex.Position))
	}
}

func identifierHandler(lex *Lexer, match string) {
	start := lex.Position
	lex.advance(match)
	kind := tokens.IDENTIFIER_TOKEN
	if kw, ok := tokens.LookupKeyword(match); ok {
		kind = kw
	}
	lex.push(tokens.NewToken(kind, match, start, lex.Position))
}

func integerHandler(lex *Lexer, match string) {
	start := lex.Position
	lex.advance(match)
	lex.push(tokens.NewToken(tokens.INTEGER_TOKEN, match, start, lex.Position))
}

// skipHandler processes a token that should be skipped by the lexer.
func skipHandler(lex *Lexer, match string) {
	lex.advance(match)
}

// Reset rewinds the lexer to the start of its buffer and drops scanned tokens.
func (lex *Lexer) Reset() {
	lex.Position = source.Start()
	lex.Tokens = make([]tokens.Token, 0)
}

// Tokenize scans the whole buffer. Unrecognized characters are reported and
// skipped; the result always ends with an EOF token.
func (lex *Lexer) Tokenize() []tokens.Token {
	for !lex.atEOF() {
		rest := lex.remainder()
		matched := false

		for _, pattern := range patterns {
			if m := pattern.regex.FindString(rest); m != "" {
				pattern.handler(lex, m)
				matched = true
				break
			}
		}

		if !matched {
			ch, size := utf8.DecodeRuneInString(rest)
			start := lex.Position
			lex.advance(rest[:size])
			lex.diagnostics.Add(
				diagnostics.NewError(fmt.Sprintf("unrecognized character '%c'", ch)).
					WithCode(diagnostics.ErrUnexpectedCharacter).
					WithPrimaryLabel(source.NewLocation(&lex.FilePath, &start, &lex.Position), ""),
			)
		}
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "end of file", lex.Position, lex.Position))
	return lex.Tokens
}

// Dump writes one line per scanned token.
func (lex *Lexer) Dump(w io.Writer) {
	for _, token := range lex.Tokens {
		token.Debug(w, lex.FilePath)
	}
}
