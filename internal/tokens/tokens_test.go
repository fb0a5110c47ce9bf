package tokens

import (
	"bytes"
	"testing"

	"github.com/asutton/beaker-old/colors"
)

func TestKeywordTable(t *testing.T) {
	reserved := []string{"var", "def", "if", "else", "while", "do", "return", "true", "false", "void", "bool", "int", "ref"}
	for _, word := range reserved {
		kind, ok := LookupKeyword(word)
		if !ok {
			t.Errorf("Expected %q to be a keyword", word)
			continue
		}
		if string(kind) != word {
			t.Errorf("Expected kind %q for %q, got %q", word, word, kind)
		}
	}

	for _, word := range []string{"x", "Var", "integer", "_if", "returns"} {
		if _, ok := LookupKeyword(word); ok {
			t.Errorf("Expected %q not to be a keyword", word)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: IDENTIFIER_TOKEN, Value: "x"}, "identifier 'x'"},
		{Token{Kind: INTEGER_TOKEN, Value: "42"}, "integer literal '42'"},
		{Token{Kind: ARROW_TOKEN, Value: "->"}, "->"},
		{Token{Kind: EOF_TOKEN, Value: "end of file"}, "end of file"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestTokenDebug(t *testing.T) {
	prev := colors.Enabled()
	defer colors.SetEnabled(prev)
	colors.SetEnabled(false)

	var buf bytes.Buffer
	tok := Token{Kind: IDENTIFIER_TOKEN, Value: "x"}
	tok.Start.Line, tok.Start.Column = 3, 7
	tok.Debug(&buf, "a.bk")

	want := "a.bk:3:7 \"x\" ('identifier')\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
