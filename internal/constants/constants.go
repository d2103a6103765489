// Package constants provides shared constants used across the javelin codebase.
//
// Constants are organized by category:
//   - File names: Configuration file names
//   - Toolchain: Compiler binary names and default language levels
//   - Target kinds: Names of the supported build step kinds
//   - Error message strings: String constants for error matching/comparison
package constants

// File names
const (
	// ConfigFileName is the name of the javelin configuration file.
	ConfigFileName = "javelin.yaml"
)

// Toolchain constants
const (
	// JavacBinary is the name of the Java compiler executable looked up on PATH.
	JavacBinary = "javac"

	// DefaultSourceLevel is the -source value used when a target omits one.
	DefaultSourceLevel = "17"

	// DefaultTargetLevel is the -target value used when a target omits one.
	DefaultTargetLevel = "17"
)

// File extensions
const (
	// JavaFileExt is the file extension for Java source files.
	JavaFileExt = ".java"

	// ProtoFileExt is the file extension for protobuf files.
	ProtoFileExt = ".proto"
)

// Target kinds
const (
	// KindJava identifies a target compiled with the Java toolchain.
	KindJava = "java"

	// KindProto identifies a target validated with the proto compiler.
	KindProto = "proto"
)

// Error message strings (for error matching/comparison)
const (
	// ErrMsgCompilationFailed is the error message for failed compilations.
	ErrMsgCompilationFailed = "compilation failed"

	// ErrMsgBuildFailed is the error message returned when one or more targets fail.
	ErrMsgBuildFailed = "build failed"
)

// Validation error messages
const (
	// ErrMsgTargetNameEmpty is returned when a target has no name.
	ErrMsgTargetNameEmpty = "target name cannot be empty"

	// ErrMsgTargetNameDuplicate is returned when two targets share a name.
	ErrMsgTargetNameDuplicate = "duplicate target name"

	// ErrMsgTargetNoSources is returned when a target declares no source patterns.
	ErrMsgTargetNoSources = "target declares no sources"

	// ErrMsgTargetNoOutput is returned when a java target has no output directory.
	ErrMsgTargetNoOutput = "target declares no output directory"

	// ErrMsgTargetKindInvalid is returned when a target kind is not recognized.
	ErrMsgTargetKindInvalid = "unknown target kind"
)
