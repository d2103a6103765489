package javac

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/step"
)

// locatedDiagnosticRe matches javac's located diagnostic lines, e.g.
//
//	src/A.java:3: error: ';' expected
//	src/B.java:7: warning: [deprecation] f() in B has been deprecated
var locatedDiagnosticRe = regexp.MustCompile(`^(.+?):(\d+): (error|warning): (.*)$`)

// notePrefix marks javac's location-less notes, e.g.
// "Note: A.java uses unchecked or unsafe operations."
const notePrefix = "Note: "

// ParseDiagnostics scans the compiler's stderr output and extracts structured
// diagnostics. Source excerpt lines, caret markers, and the trailing summary
// counters are skipped; everything else that doesn't parse as a located
// diagnostic or a note is ignored.
func ParseDiagnostics(out []byte) []step.Diagnostic {
	var diags []step.Diagnostic

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()

		if m := locatedDiagnosticRe.FindStringSubmatch(line); m != nil {
			lineNo, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			sev := step.SeverityError
			if m[3] == "warning" {
				sev = step.SeverityWarning
			}
			diags = append(diags, step.Diagnostic{
				Source:   m[1],
				Line:     lineNo,
				Severity: sev,
				Message:  m[4],
			})
			continue
		}

		if strings.HasPrefix(line, notePrefix) {
			diags = append(diags, step.Diagnostic{
				Severity: step.SeverityNote,
				Message:  strings.TrimPrefix(line, notePrefix),
			})
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		diags = append(diags, step.Diagnostic{
			Severity: step.SeverityError,
			Message:  fmt.Sprintf("reading compiler output: %v", err),
		})
	}

	return diags
}

// FailureDiagnostics interprets the stderr of a failed run. Structured
// diagnostics win when any parse; otherwise every non-blank line is surfaced
// verbatim as a location-less error, so launcher complaints that match no
// known format ("javac: invalid flag: ...", "javac: file not found: ...")
// still reach the user. A failed run with empty stderr yields a single
// generic error.
func FailureDiagnostics(out []byte) []step.Diagnostic {
	if diags := ParseDiagnostics(out); len(diags) > 0 {
		return diags
	}

	var diags []step.Diagnostic
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		diags = append(diags, step.Diagnostic{
			Severity: step.SeverityError,
			Message:  line,
		})
	}
	if err := scanner.Err(); err != nil {
		diags = append(diags, step.Diagnostic{
			Severity: step.SeverityError,
			Message:  fmt.Sprintf("reading compiler output: %v", err),
		})
	}

	if len(diags) == 0 {
		diags = append(diags, step.Diagnostic{
			Severity: step.SeverityError,
			Message:  constants.ErrMsgCompilationFailed,
		})
	}
	return diags
}

// ErrorCount returns the number of error-severity diagnostics.
func ErrorCount(diags []step.Diagnostic) int {
	var n int
	for _, d := range diags {
		if d.Severity == step.SeverityError {
			n++
		}
	}
	return n
}
