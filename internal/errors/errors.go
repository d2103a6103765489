// Package errors provides shared error variables used across the javelin codebase.
//
// Errors are organized by domain:
//   - Toolchain errors: Related to locating and running the Java compiler
//   - Workspace errors: Related to configuration loading and target lookup
package errors

import "errors"

// Toolchain errors are returned by compiler invocation paths.
var (
	// ErrNoCompiler is returned when no Java compiler can be found in the
	// running environment. This is a fatal configuration error: compilation
	// cannot proceed without a toolchain.
	ErrNoCompiler = errors.New("no java compiler available on PATH (is a JDK installed?)")
)

// Workspace errors are returned by workspace-related operations.
var (
	// ErrNotInitialized is returned when no javelin.yaml exists at the
	// workspace root.
	ErrNotInitialized = errors.New("workspace not initialized: javelin.yaml not found")

	// ErrNoTargets is returned when the configuration declares no targets.
	ErrNoTargets = errors.New("no targets configured")

	// ErrUnknownTarget is returned when a requested target name is not configured.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrNoSourcesMatched is returned when a target's source patterns match no files.
	ErrNoSourcesMatched = errors.New("no source files matched")
)
