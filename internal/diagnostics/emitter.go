package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/source"
)

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	writer      io.Writer
	files       map[string]*source.File
	highlighter *SyntaxHighlighter
}

// NewEmitter creates an emitter writing to w. files supplies the text quoted
// under each label; files that are not registered are read from disk.
func NewEmitter(w io.Writer, files map[string]*source.File) *Emitter {
	if files == nil {
		files = make(map[string]*source.File)
	}
	return &Emitter{
		writer:      w,
		files:       files,
		highlighter: NewSyntaxHighlighter(colors.Enabled()),
	}
}

func severityColor(s Severity) colors.COLOR {
	switch s {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	default:
		return colors.BOLD_BLUE
	}
}

// Emit renders one diagnostic:
//
//	error[T0004]: invalid operand of type 'bool'
//	 --> main.bk:1:19
//	  |
//	1 | var x : int = 1 + true;
//	  |                   ^^^^
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	width := e.gutterWidth(diag)
	if loc := diag.Location(); loc != nil && loc.Start != nil {
		colors.BOLD_BLUE.Fprintf(e.writer, "%s--> ", strings.Repeat(" ", width))
		fmt.Fprintln(e.writer, loc.String())
		e.printGutter(width, "")
	}

	for _, label := range diag.Labels {
		e.printLabel(width, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		colors.BOLD_BLUE.Fprintf(e.writer, "%s= ", strings.Repeat(" ", width))
		fmt.Fprintf(e.writer, "note: %s\n", note)
	}
	if diag.Help != "" {
		colors.BOLD_BLUE.Fprintf(e.writer, "%s= ", strings.Repeat(" ", width))
		colors.GREEN.Fprintf(e.writer, "help: %s\n", diag.Help)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)
	if diag.Code != "" {
		color.Fprintf(e.writer, "%s[%s]", diag.Severity, diag.Code)
	} else {
		color.Fprint(e.writer, diag.Severity.String())
	}
	colors.BOLD.Fprintf(e.writer, ": %s", diag.Message)
	fmt.Fprintln(e.writer)
}

func (e *Emitter) gutterWidth(diag *Diagnostic) int {
	maxLine := 1
	for _, label := range diag.Labels {
		if label.Location != nil && label.Location.Start != nil && label.Location.Start.Line > maxLine {
			maxLine = label.Location.Start.Line
		}
	}
	return len(fmt.Sprintf("%d", maxLine)) + 1
}

func (e *Emitter) printGutter(width int, lineNum string) {
	colors.BOLD_BLUE.Fprintf(e.writer, "%*s | ", width, lineNum)
}

func (e *Emitter) printLabel(width int, label Label, severity Severity) {
	loc := label.Location
	if loc == nil || loc.Start == nil {
		return
	}
	line, ok := e.line(loc.File(), loc.Start.Line)
	if !ok {
		return
	}

	e.printGutter(width, fmt.Sprintf("%d", loc.Start.Line))
	e.highlighter.Write(e.writer, line)
	fmt.Fprintln(e.writer)

	startCol := max(loc.Start.Column, 1)
	endCol := startCol + 1
	if loc.End != nil && loc.End.Line == loc.Start.Line && loc.End.Column > startCol {
		endCol = loc.End.Column
	}

	marker, color := "^", severityColor(severity)
	if label.Style == Secondary {
		marker, color = "-", colors.BOLD_BLUE
	}
	e.printGutter(width, "")
	fmt.Fprint(e.writer, strings.Repeat(" ", startCol-1))
	color.Fprint(e.writer, strings.Repeat(marker, endCol-startCol))
	if label.Message != "" {
		color.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) line(name string, n int) (string, bool) {
	f, ok := e.files[name]
	if !ok {
		if name == "" {
			return "", false
		}
		loaded, err := source.ReadFile(name)
		if err != nil {
			return "", false
		}
		e.files[name] = loaded
		f = loaded
	}
	return f.Line(n)
}
