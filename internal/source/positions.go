package source

// Position is a point in a source buffer. Line and Column are 1-based,
// Index is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Index  int
}

// Start returns the position of the first byte of a buffer.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the position past every rune of text. A newline starts a
// new line; every other rune occupies one column.
func (p *Position) Advance(text string) *Position {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Index += len(text)
	return p
}

// Before reports whether p precedes q in the buffer.
func (p Position) Before(q Position) bool {
	return p.Index < q.Index
}
