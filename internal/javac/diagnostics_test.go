package javac

import (
	"reflect"
	"testing"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/step"
)

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []step.Diagnostic
	}{
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
		{
			name: "single error with excerpt and summary",
			out: "B.java:3: error: ';' expected\n" +
				"    int x = 1\n" +
				"             ^\n" +
				"1 error\n",
			want: []step.Diagnostic{
				{Source: "B.java", Line: 3, Severity: step.SeverityError, Message: "';' expected"},
			},
		},
		{
			name: "error and warning with paths",
			out: "src/com/example/A.java:12: error: cannot find symbol\n" +
				"src/com/example/A.java:40: warning: [deprecation] f() in A has been deprecated\n" +
				"1 error\n" +
				"1 warning\n",
			want: []step.Diagnostic{
				{Source: "src/com/example/A.java", Line: 12, Severity: step.SeverityError, Message: "cannot find symbol"},
				{Source: "src/com/example/A.java", Line: 40, Severity: step.SeverityWarning, Message: "[deprecation] f() in A has been deprecated"},
			},
		},
		{
			name: "location-less note",
			out: "Note: A.java uses unchecked or unsafe operations.\n" +
				"Note: Recompile with -Xlint:unchecked for details.\n",
			want: []step.Diagnostic{
				{Severity: step.SeverityNote, Message: "A.java uses unchecked or unsafe operations."},
				{Severity: step.SeverityNote, Message: "Recompile with -Xlint:unchecked for details."},
			},
		},
		{
			name: "windows-free colon path with message containing colons",
			out:  "A.java:5: error: incompatible types: int cannot be converted to String\n",
			want: []step.Diagnostic{
				{Source: "A.java", Line: 5, Severity: step.SeverityError, Message: "incompatible types: int cannot be converted to String"},
			},
		},
		{
			name: "unrecognized lines are ignored",
			out:  "warning: [options] bootstrap class path not set\nsomething unparseable\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDiagnostics([]byte(tt.out))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDiagnostics() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCount(t *testing.T) {
	diags := []step.Diagnostic{
		{Severity: step.SeverityError},
		{Severity: step.SeverityWarning},
		{Severity: step.SeverityError},
		{Severity: step.SeverityNote},
	}
	if got := ErrorCount(diags); got != 2 {
		t.Errorf("ErrorCount() = %d, want 2", got)
	}
}

func TestFailureDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []step.Diagnostic
	}{
		{
			name: "structured diagnostics pass through",
			out:  "B.java:3: error: ';' expected\n1 error\n",
			want: []step.Diagnostic{
				{Source: "B.java", Line: 3, Severity: step.SeverityError, Message: "';' expected"},
			},
		},
		{
			name: "launcher complaint surfaces verbatim",
			out:  "javac: invalid flag: -bootclasspath\nUsage: javac <options> <source files>\n",
			want: []step.Diagnostic{
				{Severity: step.SeverityError, Message: "javac: invalid flag: -bootclasspath"},
				{Severity: step.SeverityError, Message: "Usage: javac <options> <source files>"},
			},
		},
		{
			name: "missing file surfaces verbatim",
			out:  "javac: file not found: Nope.java\n",
			want: []step.Diagnostic{
				{Severity: step.SeverityError, Message: "javac: file not found: Nope.java"},
			},
		},
		{
			name: "blank lines are skipped",
			out:  "\n  \njavac: no source files\n\n",
			want: []step.Diagnostic{
				{Severity: step.SeverityError, Message: "javac: no source files"},
			},
		},
		{
			name: "empty output still reports the failure",
			out:  "",
			want: []step.Diagnostic{
				{Severity: step.SeverityError, Message: constants.ErrMsgCompilationFailed},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FailureDiagnostics([]byte(tt.out))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FailureDiagnostics() = %v, want %v", got, tt.want)
			}
		})
	}
}
