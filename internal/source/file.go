package source

import (
	"fmt"
	"os"
	"strings"
)

// File is a named source buffer. Diagnostics use it to print the lines a
// location refers to.
type File struct {
	Name    string
	Content string
	lines   []string
}

// NewFile wraps in-memory text.
func NewFile(name, content string) *File {
	return &File{Name: name, Content: content}
}

// ReadFile loads a source file from disk.
func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return NewFile(path, string(content)), nil
}

// Line returns the 1-based line n without its terminator.
func (f *File) Line(n int) (string, bool) {
	if f.lines == nil {
		f.lines = strings.Split(strings.ReplaceAll(f.Content, "\r\n", "\n"), "\n")
	}
	if n < 1 || n > len(f.lines) {
		return "", false
	}
	return f.lines[n-1], true
}

// Text returns the source text covered by loc, when it lies in this file.
func (f *File) Text(loc *Location) string {
	if loc == nil || loc.Start == nil || loc.End == nil {
		return ""
	}
	start, end := loc.Start.Index, loc.End.Index
	if start < 0 || end > len(f.Content) || start > end {
		return ""
	}
	return f.Content[start:end]
}
