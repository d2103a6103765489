package cmd

import (
	"context"
	"fmt"
)

// PlanCmd prints the full invocation for each selected step without running
// anything.
type PlanCmd struct {
	Targets []string `arg:"" optional:"" help:"Targets to plan (glob patterns allowed, default: all)"`
}

// Run executes the plan command.
func (c *PlanCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	ws, err := OpenWorkspace(ctx, globals)
	if err != nil {
		return err
	}

	steps, err := BuildSteps(ctx, ws, c.Targets)
	if err != nil {
		return err
	}

	ec := NewExecutionContext(globals)
	for _, s := range steps {
		fmt.Println(s.Description(ec))
	}
	return nil
}
