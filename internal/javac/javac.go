// Package javac adapts the platform's Java compiler toolchain into a build
// step: it assembles a javac command line from configuration, runs the
// compilation synchronously, and translates the compiler's diagnostics into
// the execution context's conventions.
package javac

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/step"
)

// AnnotationParams is the annotation-processing configuration for a step.
// It is owned by the caller and rendered opaquely into compiler flags.
type AnnotationParams struct {
	// Disabled renders -proc:none, turning annotation processing off entirely.
	Disabled bool
	// Processors lists fully qualified processor class names (-processor).
	Processors []string
	// Path lists processor classpath entries (-processorpath).
	Path []string
	// Options holds -Akey=value processor options.
	Options map[string]string
}

// Config carries the constructor configuration for a Step. All fields are
// copied on construction; a Step never observes later mutation.
type Config struct {
	// OutputDir is where class files are written (-d). Required.
	OutputDir string
	// Sources lists the Java source file paths to compile. Required.
	Sources []string
	// Classpath lists the default classpath entries.
	Classpath []string
	// BootClasspath lazily resolves the boot classpath. It is invoked at
	// option-build time only, never during construction. Nil means none.
	BootClasspath func() string
	// Annotation is the caller-owned annotation-processing configuration.
	Annotation AnnotationParams
	// SourceLevel and TargetLevel are -source/-target values. Empty values
	// fall back to the toolchain defaults.
	SourceLevel string
	TargetLevel string
	// Toolchain overrides the compiler binding. Nil selects the system javac.
	Toolchain Toolchain
}

// Step compiles a fixed set of Java sources. Immutable after construction
// and safe for concurrent reads; each Execute call owns its own compiler
// invocation.
type Step struct {
	outputDir     string
	sources       []string
	classpath     []string
	bootClasspath func() string
	annotation    AnnotationParams
	sourceLevel   string
	targetLevel   string
	toolchain     Toolchain
}

var _ step.Step = (*Step)(nil)

// NewStep validates the configuration and constructs a Step. Malformed
// configuration (no output directory, no sources) fails here, not at
// execution time. The boot classpath provider is not invoked.
func NewStep(cfg Config) (*Step, error) {
	if cfg.OutputDir == "" {
		return nil, goerrors.New("javac step: output directory is required")
	}
	if len(cfg.Sources) == 0 {
		return nil, goerrors.New("javac step: at least one source file is required")
	}

	sourceLevel := cfg.SourceLevel
	if sourceLevel == "" {
		sourceLevel = constants.DefaultSourceLevel
	}
	targetLevel := cfg.TargetLevel
	if targetLevel == "" {
		targetLevel = constants.DefaultTargetLevel
	}
	toolchain := cfg.Toolchain
	if toolchain == nil {
		toolchain = &SystemToolchain{}
	}

	return &Step{
		outputDir:     cfg.OutputDir,
		sources:       copyStrings(cfg.Sources),
		classpath:     copyStrings(cfg.Classpath),
		bootClasspath: cfg.BootClasspath,
		annotation:    copyAnnotationParams(cfg.Annotation),
		sourceLevel:   sourceLevel,
		targetLevel:   targetLevel,
		toolchain:     toolchain,
	}, nil
}

// Options deterministically renders the command-line options for this step
// against the given classpath. Pure function of its inputs; this is where the
// boot classpath provider gets resolved.
func (s *Step) Options(ec *step.ExecutionContext, classpath []string) []string {
	var opts []string

	if ec != nil && ec.Verbosity.ShouldPrintCommands() {
		opts = append(opts, "-verbose")
	}

	opts = append(opts, "-d", s.outputDir)

	if len(classpath) > 0 {
		opts = append(opts, "-classpath", strings.Join(classpath, string(os.PathListSeparator)))
	}

	if s.bootClasspath != nil {
		if bcp := s.bootClasspath(); bcp != "" {
			opts = append(opts, "-bootclasspath", bcp)
		}
	}

	opts = append(opts, s.annotationOptions()...)
	opts = append(opts, "-source", s.sourceLevel, "-target", s.targetLevel)

	return opts
}

// annotationOptions renders the annotation-processing flags. Processor
// options are emitted in sorted key order so rendering stays deterministic.
func (s *Step) annotationOptions() []string {
	var opts []string

	if s.annotation.Disabled {
		return append(opts, "-proc:none")
	}
	if len(s.annotation.Processors) > 0 {
		opts = append(opts, "-processor", strings.Join(s.annotation.Processors, ","))
	}
	if len(s.annotation.Path) > 0 {
		opts = append(opts, "-processorpath", strings.Join(s.annotation.Path, string(os.PathListSeparator)))
	}
	if len(s.annotation.Options) > 0 {
		keys := make([]string, 0, len(s.annotation.Options))
		for k := range s.annotation.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v := s.annotation.Options[k]; v != "" {
				opts = append(opts, fmt.Sprintf("-A%s=%s", k, v))
			} else {
				opts = append(opts, "-A"+k)
			}
		}
	}

	return opts
}

// Execute implements step.Step. It compiles with the step's own configured
// classpath.
func (s *Step) Execute(ctx context.Context, ec *step.ExecutionContext) (int, error) {
	return s.ExecuteWithClasspath(ctx, ec, s.classpath)
}

// ExecuteWithClasspath compiles with an externally supplied classpath.
// Callers needing custom classpath composition use this entry point directly
// instead of Execute.
//
// The returned error reports environment problems only (no compiler
// installed, output directory not creatable). Compilation failures come back
// as a 1 exit code with diagnostics written to the context's stderr, subject
// to verbosity.
func (s *Step) ExecuteWithClasspath(ctx context.Context, ec *step.ExecutionContext, classpath []string) (int, error) {
	// javac refuses to run when the -d directory is missing.
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return step.ExitFailure, fmt.Errorf("create output directory: %w", err)
	}

	options := s.Options(ec, classpath)
	result, err := s.toolchain.Compile(ctx, options, s.sources)
	if err != nil {
		return step.ExitFailure, err
	}
	if result.Success {
		return step.ExitSuccess, nil
	}

	step.WriteDiagnostics(ec, result.Diagnostics)
	return step.ExitFailure, nil
}

// Description implements step.Step. It renders the full javac invocation.
func (s *Step) Description(ec *step.ExecutionContext) string {
	var b strings.Builder
	b.WriteString("javac ")
	b.WriteString(strings.Join(s.Options(ec, s.classpath), " "))
	b.WriteString(" ")
	b.WriteString(strings.Join(s.sources, " "))
	return b.String()
}

// ShortName implements step.Step.
func (s *Step) ShortName() string {
	return fmt.Sprintf("javac %s", s.outputDir)
}

// Sources returns the source file paths this step compiles.
func (s *Step) Sources() []string {
	return copyStrings(s.sources)
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyAnnotationParams(in AnnotationParams) AnnotationParams {
	out := AnnotationParams{
		Disabled:   in.Disabled,
		Processors: copyStrings(in.Processors),
		Path:       copyStrings(in.Path),
	}
	if len(in.Options) > 0 {
		out.Options = make(map[string]string, len(in.Options))
		for k, v := range in.Options {
			out.Options[k] = v
		}
	}
	return out
}
