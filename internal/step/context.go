package step

import (
	"io"
	"os"
)

// Verbosity controls how much of a step's output reaches the user.
type Verbosity int

const (
	// Silent suppresses everything, including compiler diagnostics.
	Silent Verbosity = iota
	// Standard prints compiler diagnostics and per-step results.
	Standard
	// Verbose additionally prints full step invocations.
	Verbose
)

// String returns the verbosity as a string.
func (v Verbosity) String() string {
	switch v {
	case Silent:
		return "silent"
	case Standard:
		return "standard"
	case Verbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ShouldPrintStandardInformation reports whether diagnostics and other
// standard output should be printed.
func (v Verbosity) ShouldPrintStandardInformation() bool {
	return v >= Standard
}

// ShouldPrintCommands reports whether full step invocations should be printed.
func (v Verbosity) ShouldPrintCommands() bool {
	return v >= Verbose
}

// ExecutionContext carries the output sink and verbosity policy for a single
// step invocation. It is the channel through which steps report diagnostics.
type ExecutionContext struct {
	// Stderr receives compiler diagnostics. Never nil after NewExecutionContext.
	Stderr io.Writer
	// Verbosity decides whether diagnostics are printed at all.
	Verbosity Verbosity
}

// NewExecutionContext returns an ExecutionContext writing to stderr with the
// given verbosity. A nil stderr defaults to os.Stderr.
func NewExecutionContext(stderr io.Writer, verbosity Verbosity) *ExecutionContext {
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecutionContext{
		Stderr:    stderr,
		Verbosity: verbosity,
	}
}
