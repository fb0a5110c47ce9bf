package colors

import (
	"fmt"
	"io"
	"strings"
)

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.wrap(fmt.Sprintf(format, args...)))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	line := fmt.Sprintln(args...)
	fmt.Fprint(w, c.wrap(strings.TrimSuffix(line, "\n"))+"\n")
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.wrap(fmt.Sprint(args...)))
}
