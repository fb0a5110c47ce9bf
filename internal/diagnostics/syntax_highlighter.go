package diagnostics

import (
	"io"
	"unicode"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/tokens"
)

// SyntaxHighlighter colours the source lines quoted under diagnostics
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// Span is a run of source text and the colour it is drawn in.
type Span struct {
	Text  string
	Color colors.COLOR
}

// Highlight splits a line into coloured spans. Keywords, literals, type
// names and comments get their own colours; everything else is plain.
func (sh *SyntaxHighlighter) Highlight(line string) []Span {
	if !sh.enabled {
		return []Span{{Text: line, Color: colors.WHITE}}
	}

	var spans []Span
	i := 0
	for i < len(line) {
		c := rune(line[i])
		start := i
		switch {
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			spans = append(spans, Span{Text: line[i:], Color: colors.GREY})
			return spans
		case unicode.IsDigit(c):
			for i < len(line) && unicode.IsDigit(rune(line[i])) {
				i++
			}
			spans = append(spans, Span{Text: line[start:i], Color: colors.LIGHT_ORANGE})
		case unicode.IsLetter(c) || c == '_':
			for i < len(line) && (unicode.IsLetter(rune(line[i])) || unicode.IsDigit(rune(line[i])) || line[i] == '_') {
				i++
			}
			word := line[start:i]
			spans = append(spans, Span{Text: word, Color: wordColor(word)})
		default:
			i++
			spans = append(spans, Span{Text: line[start:i], Color: colors.WHITE})
		}
	}
	return spans
}

func wordColor(word string) colors.COLOR {
	kind, ok := tokens.LookupKeyword(word)
	switch {
	case !ok:
		return colors.WHITE
	case kind == tokens.VOID_TOKEN || kind == tokens.BOOL_TOKEN || kind == tokens.INT_TOKEN || kind == tokens.REF_TOKEN:
		return colors.CYAN
	case kind == tokens.TRUE_TOKEN || kind == tokens.FALSE_TOKEN:
		return colors.LIGHT_ORANGE
	default:
		return colors.PURPLE
	}
}

// Write prints a highlighted line to w.
func (sh *SyntaxHighlighter) Write(w io.Writer, line string) {
	for _, span := range sh.Highlight(line) {
		if !sh.enabled || span.Color == colors.WHITE {
			io.WriteString(w, span.Text)
			continue
		}
		span.Color.Fprint(w, span.Text)
	}
}
