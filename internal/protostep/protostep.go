// Package protostep validates protobuf sources as a build step. Unlike the
// javac step, which shells out to the platform toolchain, compilation here is
// delegated to protocompile in-process; diagnostics are adapted into the
// shared step conventions.
package protostep

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/bufbuild/protocompile"

	"github.com/javelin-build/javelin/internal/step"
)

// Config carries the constructor configuration for a Step.
type Config struct {
	// Name labels the step in logs and ShortName output. Required.
	Name string
	// Sources lists proto file paths, relative to the import paths. Required.
	Sources []string
	// ImportPaths lists directories proto imports resolve against.
	// Empty defaults to the current directory.
	ImportPaths []string
}

// Step validates a fixed set of proto sources. Immutable after construction.
type Step struct {
	name        string
	sources     []string
	importPaths []string
}

var _ step.Step = (*Step)(nil)

// NewStep validates the configuration and constructs a Step.
func NewStep(cfg Config) (*Step, error) {
	if cfg.Name == "" {
		return nil, goerrors.New("proto step: name is required")
	}
	if len(cfg.Sources) == 0 {
		return nil, goerrors.New("proto step: at least one source file is required")
	}

	importPaths := cfg.ImportPaths
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}

	return &Step{
		name:        cfg.Name,
		sources:     append([]string(nil), cfg.Sources...),
		importPaths: append([]string(nil), importPaths...),
	}, nil
}

// Execute implements step.Step. It compiles the proto sources in-process and
// reports collected diagnostics through the execution context.
func (s *Step) Execute(ctx context.Context, ec *step.ExecutionContext) (int, error) {
	rep := &collectingReporter{}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: s.importPaths,
		}),
		Reporter: rep,
	}

	_, err := compiler.Compile(ctx, s.sources...)
	if rep.Failed() {
		step.WriteDiagnostics(ec, rep.Diagnostics())
		return step.ExitFailure, nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return step.ExitFailure, ctx.Err()
		}
		// Errors that never reached the reporter (unresolvable files,
		// missing imports) still count as a failed compilation.
		step.WriteDiagnostics(ec, []step.Diagnostic{{
			Severity: step.SeverityError,
			Message:  err.Error(),
		}})
		return step.ExitFailure, nil
	}

	return step.ExitSuccess, nil
}

// Description implements step.Step.
func (s *Step) Description(ec *step.ExecutionContext) string {
	var b strings.Builder
	b.WriteString("protocheck")
	for _, p := range s.importPaths {
		b.WriteString(" -I ")
		b.WriteString(p)
	}
	b.WriteString(" ")
	b.WriteString(strings.Join(s.sources, " "))
	return b.String()
}

// ShortName implements step.Step.
func (s *Step) ShortName() string {
	return fmt.Sprintf("protocheck %s", s.name)
}

// Sources returns the proto file paths this step validates.
func (s *Step) Sources() []string {
	return append([]string(nil), s.sources...)
}
