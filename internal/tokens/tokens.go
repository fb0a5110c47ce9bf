package tokens

import (
	"fmt"
	"io"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/source"
)

type TOKEN string

const (
	//keywords
	BOOL_TOKEN   TOKEN = "bool"
	DEF_TOKEN    TOKEN = "def"
	DO_TOKEN     TOKEN = "do"
	ELSE_TOKEN   TOKEN = "else"
	FALSE_TOKEN  TOKEN = "false"
	IF_TOKEN     TOKEN = "if"
	INT_TOKEN    TOKEN = "int"
	REF_TOKEN    TOKEN = "ref"
	RETURN_TOKEN TOKEN = "return"
	TRUE_TOKEN   TOKEN = "true"
	VAR_TOKEN    TOKEN = "var"
	VOID_TOKEN   TOKEN = "void"
	WHILE_TOKEN  TOKEN = "while"

	IDENTIFIER_TOKEN TOKEN = "identifier"
	INTEGER_TOKEN    TOKEN = "integer literal"

	//punctuators
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	COMMA_TOKEN     TOKEN = ","
	COLON_TOKEN     TOKEN = ":"
	SEMICOLON_TOKEN TOKEN = ";"
	EQUALS_TOKEN    TOKEN = "="
	ARROW_TOKEN     TOKEN = "->"

	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	MOD_TOKEN   TOKEN = "%"

	//bitwise operators
	BIT_AND_TOKEN TOKEN = "&"
	BIT_OR_TOKEN  TOKEN = "|"
	BIT_XOR_TOKEN TOKEN = "^"
	BIT_NOT_TOKEN TOKEN = "~"
	SHL_TOKEN     TOKEN = "<<"
	SHR_TOKEN     TOKEN = ">>"

	//relational operators
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_TOKEN          TOKEN = "<"
	GREATER_TOKEN       TOKEN = ">"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_EQUAL_TOKEN TOKEN = ">="

	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	NOT_TOKEN TOKEN = "!"

	EOF_TOKEN TOKEN = "end of file"
)

// keywords is the pre-seeded table mapping reserved spellings to their kinds
var keywords = map[string]TOKEN{
	"bool":   BOOL_TOKEN,
	"def":    DEF_TOKEN,
	"do":     DO_TOKEN,
	"else":   ELSE_TOKEN,
	"false":  FALSE_TOKEN,
	"if":     IF_TOKEN,
	"int":    INT_TOKEN,
	"ref":    REF_TOKEN,
	"return": RETURN_TOKEN,
	"true":   TRUE_TOKEN,
	"var":    VAR_TOKEN,
	"void":   VOID_TOKEN,
	"while":  WHILE_TOKEN,
}

// LookupKeyword returns the reserved kind for a spelling.
func LookupKeyword(spelling string) (TOKEN, bool) {
	kind, ok := keywords[spelling]
	return kind, ok
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}

// Location returns the span of the token in filename.
func (t *Token) Location(filename *string) *source.Location {
	return source.NewLocation(filename, &t.Start, &t.End)
}

func (t Token) String() string {
	if t.Kind == IDENTIFIER_TOKEN || t.Kind == INTEGER_TOKEN {
		return fmt.Sprintf("%s '%s'", t.Kind, t.Value)
	}
	return string(t.Kind)
}

// Debug writes "file:line:col value (kind)" for token dumps.
func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}
