package protostep

import (
	"github.com/bufbuild/protocompile/reporter"

	"github.com/javelin-build/javelin/internal/step"
)

// collectingReporter adapts protocompile's reporter callbacks into the shared
// diagnostic model. It never aborts compilation; all errors are collected so
// a failing build prints every diagnostic, not just the first.
type collectingReporter struct {
	diags  []step.Diagnostic
	failed bool
}

// Error implements reporter.Reporter.
func (r *collectingReporter) Error(err reporter.ErrorWithPos) error {
	r.failed = true
	r.diags = append(r.diags, toDiagnostic(step.SeverityError, err))
	return nil // Continue processing
}

// Warning implements reporter.Reporter.
func (r *collectingReporter) Warning(err reporter.ErrorWithPos) {
	r.diags = append(r.diags, toDiagnostic(step.SeverityWarning, err))
}

// Failed returns true if any errors were reported.
func (r *collectingReporter) Failed() bool {
	return r.failed
}

// Diagnostics returns the collected diagnostics in report order.
func (r *collectingReporter) Diagnostics() []step.Diagnostic {
	return r.diags
}

func toDiagnostic(sev step.Severity, err reporter.ErrorWithPos) step.Diagnostic {
	pos := err.GetPosition()
	return step.Diagnostic{
		Source:   pos.Filename,
		Line:     pos.Line,
		Severity: sev,
		Message:  err.Unwrap().Error(),
	}
}
