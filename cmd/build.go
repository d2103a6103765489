package cmd

import (
	"context"
	"fmt"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/logger"
	"github.com/javelin-build/javelin/internal/step"
)

// BuildCmd runs the build steps for the selected targets.
type BuildCmd struct {
	Targets []string `arg:"" optional:"" help:"Targets to build (glob patterns allowed, default: all)"`
}

// Run executes the build command.
func (c *BuildCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	ws, err := OpenWorkspace(ctx, globals)
	if err != nil {
		return err
	}

	steps, err := BuildSteps(ctx, ws, c.Targets)
	if err != nil {
		return err
	}

	ec := NewExecutionContext(globals)

	// Every step runs even when an earlier one fails, so a single build
	// reports all broken targets. Environment errors abort immediately.
	var failed int
	for _, s := range steps {
		code, err := runStep(ctx, ec, s)
		if err != nil {
			return fmt.Errorf("%s: %w", s.ShortName(), err)
		}
		if code != step.ExitSuccess {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%s: %d of %d steps failed", constants.ErrMsgBuildFailed, failed, len(steps))
	}
	logger.Log(ctx).Info().Int("steps", len(steps)).Msg("Build succeeded")
	return nil
}

// runStep executes one step and logs its outcome. The returned error is an
// environment problem, not a compile failure; compile failures are carried in
// the exit code.
func runStep(ctx context.Context, ec *step.ExecutionContext, s step.Step) (int, error) {
	log := logger.Log(ctx)
	log.Info().Str("step", s.ShortName()).Msg("Running step")
	if ec.Verbosity.ShouldPrintCommands() {
		log.Debug().Str("command", s.Description(ec)).Msg("Step invocation")
	}

	code, err := s.Execute(ctx, ec)
	if err != nil {
		return code, err
	}

	if code != step.ExitSuccess {
		log.Error().Str("step", s.ShortName()).Int("exit", code).Msg("Step failed")
	} else {
		log.Debug().Str("step", s.ShortName()).Msg("Step succeeded")
	}
	return code, nil
}
