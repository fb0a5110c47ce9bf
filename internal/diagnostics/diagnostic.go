package diagnostics

import (
	"github.com/asutton/beaker-old/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Diagnostic represents a compiler diagnostic (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Error code like "T0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []string
	Help     string // Suggestion for fixing the error
}

func newDiagnostic(severity Severity, message string) *Diagnostic {
	return &Diagnostic{
		Severity: severity,
		Message:  message,
		Labels:   make([]Label, 0, 1),
	}
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return newDiagnostic(Error, message)
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return newDiagnostic(Warning, message)
}

// NewInfo creates a new info diagnostic
func NewInfo(message string) *Diagnostic {
	return newDiagnostic(Info, message)
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithPrimaryLabel sets the main location of the diagnostic. A diagnostic has
// at most one primary label and it is always Labels[0].
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.Primary() != nil {
		return d
	}
	if d.FilePath == "" {
		d.FilePath = loc.File()
	}
	d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a context label. Panics without a primary label.
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.Primary() == nil {
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}
	d.Labels = append(d.Labels, Label{Location: loc, Message: message, Style: Secondary})
	return d
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, message)
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Primary returns the primary label, or nil.
func (d *Diagnostic) Primary() *Label {
	for i := range d.Labels {
		if d.Labels[i].Style == Primary {
			return &d.Labels[i]
		}
	}
	return nil
}

// Location returns the primary location, or nil.
func (d *Diagnostic) Location() *source.Location {
	if p := d.Primary(); p != nil {
		return p.Location
	}
	return nil
}

// String renders the diagnostic on one line: "file:line:col: error: message".
func (d *Diagnostic) String() string {
	prefix := ""
	if loc := d.Location(); loc != nil {
		prefix = loc.String() + ": "
	}
	return prefix + d.Severity.String() + ": " + d.Message
}
