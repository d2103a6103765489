// Package workspace loads and validates the javelin.yaml build configuration
// and resolves target sources against the filesystem.
package workspace

// Config represents the javelin.yaml configuration.
type Config struct {
	Targets []TargetConfig `yaml:"targets"`
}

// TargetConfig declares a single build target.
type TargetConfig struct {
	// Name uniquely identifies the target.
	Name string `yaml:"name"`
	// Kind selects the step implementation: "java" (default) or "proto".
	Kind string `yaml:"kind,omitempty"`
	// Srcs lists doublestar glob patterns, relative to the workspace root.
	Srcs []string `yaml:"srcs"`
	// Output is the class output directory for java targets.
	Output string `yaml:"output,omitempty"`
	// Classpath lists classpath entries for java targets.
	Classpath []string `yaml:"classpath,omitempty"`
	// Bootclasspath lists boot classpath entries. When empty, the
	// JAVELIN_BOOTCLASSPATH environment variable is consulted lazily at
	// build time.
	Bootclasspath []string `yaml:"bootclasspath,omitempty"`
	// Source and Target are the -source/-target language levels. Empty
	// values fall back to the toolchain defaults.
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`
	// Processors, ProcessorPath, and ProcessorOpts configure annotation
	// processing for java targets. NoProcessing disables it outright.
	Processors    []string          `yaml:"processors,omitempty"`
	ProcessorPath []string          `yaml:"processor_path,omitempty"`
	ProcessorOpts map[string]string `yaml:"processor_opts,omitempty"`
	NoProcessing  bool              `yaml:"no_processing,omitempty"`
	// ImportPaths lists proto import roots for proto targets, relative to
	// the workspace root.
	ImportPaths []string `yaml:"import_paths,omitempty"`
}

// InitOptions contains options for initializing a workspace.
type InitOptions struct {
	// Force overwrites an existing configuration.
	Force bool
}
