package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/javac"
	"github.com/javelin-build/javelin/internal/protostep"
	"github.com/javelin-build/javelin/internal/step"
	"github.com/javelin-build/javelin/internal/workspace"
)

// bootClasspathEnv is consulted lazily when a target declares no boot
// classpath of its own.
const bootClasspathEnv = "JAVELIN_BOOTCLASSPATH"

// OpenWorkspace opens the workspace for the current invocation: the
// configured path when --config is set, otherwise the nearest javelin.yaml
// above the working directory.
func OpenWorkspace(ctx context.Context, globals *GlobalOptions) (*workspace.Workspace, error) {
	if globals.Config != "" {
		return workspace.Open(ctx, filepath.Dir(globals.Config))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get cwd: %w", err)
	}
	root, err := workspace.FindRoot(cwd)
	if err != nil {
		return nil, err
	}
	return workspace.Open(ctx, root)
}

// NewExecutionContext derives the execution context for step invocations from
// the global options and the active log level.
func NewExecutionContext(globals *GlobalOptions) *step.ExecutionContext {
	verbosity := step.Standard
	if globals.Quiet {
		verbosity = step.Silent
	} else if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		verbosity = step.Verbose
	}
	return step.NewExecutionContext(os.Stderr, verbosity)
}

// BuildSteps constructs one build step per selected target, in declaration
// order.
func BuildSteps(ctx context.Context, ws *workspace.Workspace, names []string) ([]step.Step, error) {
	targets, err := ws.SelectTargets(names)
	if err != nil {
		return nil, err
	}

	steps := make([]step.Step, 0, len(targets))
	for i := range targets {
		t := &targets[i]
		s, err := buildStep(ctx, ws, t)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", t.Name, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// buildStep constructs the step for a single target.
func buildStep(ctx context.Context, ws *workspace.Workspace, t *workspace.TargetConfig) (step.Step, error) {
	sources, err := ws.ExpandSources(t)
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case constants.KindProto:
		// Sources are expanded relative to the root, so the root is always
		// an import path; configured paths take precedence.
		importPaths := append(resolvePaths(ws.Root(), t.ImportPaths), ws.Root())
		return protostep.NewStep(protostep.Config{
			Name:        t.Name,
			Sources:     sources,
			ImportPaths: importPaths,
		})
	default:
		// Sources stay relative and the compiler runs from the root, so
		// diagnostics echo workspace-relative paths.
		return javac.NewStep(javac.Config{
			OutputDir:     filepath.Join(ws.Root(), t.Output),
			Sources:       sources,
			Classpath:     resolvePaths(ws.Root(), t.Classpath),
			BootClasspath: bootClasspathProvider(ws.Root(), t),
			Annotation: javac.AnnotationParams{
				Disabled:   t.NoProcessing,
				Processors: t.Processors,
				Path:       resolvePaths(ws.Root(), t.ProcessorPath),
				Options:    t.ProcessorOpts,
			},
			SourceLevel: t.Source,
			TargetLevel: t.Target,
			Toolchain:   &javac.SystemToolchain{WorkDir: ws.Root()},
		})
	}
}

// bootClasspathProvider returns the lazy boot classpath provider for a
// target. The configured entries win; otherwise the environment is read at
// call time, not here.
func bootClasspathProvider(root string, t *workspace.TargetConfig) func() string {
	if len(t.Bootclasspath) > 0 {
		entries := resolvePaths(root, t.Bootclasspath)
		return func() string {
			return strings.Join(entries, string(os.PathListSeparator))
		}
	}
	return func() string {
		return os.Getenv(bootClasspathEnv)
	}
}

// resolvePaths joins relative paths to root, leaving absolute paths alone.
func resolvePaths(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			resolved[i] = p
		} else {
			resolved[i] = filepath.Join(root, p)
		}
	}
	return resolved
}
