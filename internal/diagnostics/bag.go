package diagnostics

import (
	"fmt"
	"io"
	"sync"

	"github.com/asutton/beaker-old/colors"
	"github.com/asutton/beaker-old/internal/source"
)

const (
	compileFailedMsg          = "\nCompilation failed with %d error(s)"
	andWarningMsg             = " and %d warning(s)"
	compileSuccessWithWarning = "\nCompilation succeeded with %d warning(s)\n"
)

// DiagnosticBag collects diagnostics during compilation
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	files       map[string]*source.File
}

// NewDiagnosticBag creates an empty bag.
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		files:       make(map[string]*source.File),
	}
}

// AddSource registers source text so emitted diagnostics can quote it.
func (db *DiagnosticBag) AddSource(file *source.File) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.files[file.Name] = file
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics (thread-safe)
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// Messages returns the message of every diagnostic in report order.
func (db *DiagnosticBag) Messages() []string {
	diags := db.Diagnostics()
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Message
	}
	return msgs
}

// EmitAll renders every diagnostic followed by a summary line.
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	db.Emit(w)
	db.printSummary(w)
}

// Emit renders every diagnostic without the summary.
func (db *DiagnosticBag) Emit(w io.Writer) {
	db.mu.Lock()
	files := make(map[string]*source.File, len(db.files))
	for name, f := range db.files {
		files[name] = f
	}
	db.mu.Unlock()

	emitter := NewEmitter(w, files)
	for _, diag := range db.Diagnostics() {
		emitter.Emit(diag)
	}
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, compileSuccessWithWarning, db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
