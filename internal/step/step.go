// Package step defines the build step abstraction and the execution context
// a step runs against.
package step

import "context"

// Step is a single unit of build work. Implementations are immutable after
// construction and safe to read concurrently, but a single Step value is not
// designed for concurrent Execute calls: each invocation owns its own
// toolchain resources, scoped to that call.
type Step interface {
	// Execute runs the step synchronously and returns its exit code:
	// 0 on success, 1 on failure. A non-nil error indicates an environment
	// problem (e.g. no compiler installed), not a failed compilation;
	// callers must treat the exit code as the authoritative success signal.
	Execute(ctx context.Context, ec *ExecutionContext) (int, error)

	// Description returns the full human-readable invocation, suitable for
	// logging and dry runs.
	Description(ec *ExecutionContext) string

	// ShortName returns a short identifying label for the step.
	ShortName() string
}

// ExitSuccess and ExitFailure are the only exit codes a Step returns.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
