package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/workspace"
)

// InitCmd writes a starter javelin.yaml in the current directory.
type InitCmd struct {
	Force  bool   `help:"Force overwrite existing configuration"`
	Name   string `help:"Name of the initial target" default:"app"`
	Output string `help:"Class output directory of the initial target" default:"out"`
}

// Run executes the init command.
func (c *InitCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get cwd: %w", err)
	}

	cfg := &workspace.Config{
		Targets: []workspace.TargetConfig{
			{
				Name:   c.Name,
				Kind:   constants.KindJava,
				Srcs:   []string{"src/**/*" + constants.JavaFileExt},
				Output: c.Output,
			},
		},
	}

	_, err = workspace.Init(ctx, cwd, cfg, workspace.InitOptions{Force: c.Force})
	return err
}
