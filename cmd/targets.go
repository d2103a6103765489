package cmd

import (
	"context"
	"fmt"

	"github.com/javelin-build/javelin/internal/constants"
)

// TargetsCmd lists the configured targets.
type TargetsCmd struct {
	Verbose bool `short:"l" help:"Show source patterns and outputs"`
}

// Run executes the targets command.
func (c *TargetsCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	ws, err := OpenWorkspace(ctx, globals)
	if err != nil {
		return err
	}

	for _, t := range ws.Targets() {
		kind := t.Kind
		if kind == "" {
			kind = constants.KindJava
		}
		if c.Verbose {
			fmt.Printf("%s\t%s\tsrcs=%v\toutput=%s\n", t.Name, kind, t.Srcs, t.Output)
		} else {
			fmt.Printf("%s\t%s\n", t.Name, kind)
		}
	}
	return nil
}
