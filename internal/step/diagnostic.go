package step

import "fmt"

// Severity classifies a compiler diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

// String returns the severity as a string.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "note":
		return SeverityNote, nil
	default:
		return 0, fmt.Errorf("unknown severity: %s", s)
	}
}

// Diagnostic is a single structured compiler message with an optional source
// location. Line is 1-based; a zero Line together with an empty Source means
// the location is unknown.
type Diagnostic struct {
	Source   string // Source file name, empty when unknown
	Line     int    // Line number, 0 when unknown
	Severity Severity
	Message  string
}

// String renders the diagnostic as "<source>:<line>: <message>" when the
// location is known, otherwise just the message.
func (d Diagnostic) String() string {
	if d.Source != "" {
		return fmt.Sprintf("%s:%d: %s", d.Source, d.Line, d.Message)
	}
	return d.Message
}

// WriteDiagnostics writes one diagnostic per line to w, honoring the
// execution context's verbosity. Steps call this on the failure path.
func WriteDiagnostics(ec *ExecutionContext, diags []Diagnostic) {
	if !ec.Verbosity.ShouldPrintStandardInformation() {
		return
	}
	for _, d := range diags {
		fmt.Fprintln(ec.Stderr, d.String())
	}
}
