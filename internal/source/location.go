package source

import (
	"fmt"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions.
// The positions are copied so later advances of a cursor do not move the span.
func NewLocation(filename *string, start, end *Position) *Location {
	loc := &Location{Filename: filename}
	if start != nil {
		s := *start
		loc.Start = &s
	}
	if end != nil {
		e := *end
		loc.End = &e
	}
	return loc
}

// Span builds a location covering from's start to to's end.
func Span(from, to *Location) *Location {
	if from == nil {
		return to
	}
	if to == nil {
		return from
	}
	return NewLocation(from.Filename, from.Start, to.End)
}

// File returns the file name, or the empty string when unknown.
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return ""
	}
	return *l.Filename
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start == nil || l.End == nil || pos == nil {
		return false
	}
	return l.Start.Index <= pos.Index && pos.Index <= l.End.Index
}

// String renders the location as file:line:col.
func (l *Location) String() string {
	if l == nil || l.Start == nil {
		return "<unknown>"
	}
	if name := l.File(); name != "" {
		return fmt.Sprintf("%s:%d:%d", name, l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
}
