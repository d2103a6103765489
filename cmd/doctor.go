package cmd

import (
	"context"

	"github.com/javelin-build/javelin/internal/javac"
	"github.com/javelin-build/javelin/internal/logger"
)

// DoctorCmd reports whether the build toolchains are usable in this
// environment.
type DoctorCmd struct{}

// Run executes the doctor command.
func (c *DoctorCmd) Run(globals *GlobalOptions, ctx context.Context) error {
	log := logger.Log(ctx)

	toolchain := &javac.SystemToolchain{}
	version, err := toolchain.Version(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Java toolchain unavailable")
		return err
	}
	log.Info().Str("version", version).Msg("Java toolchain OK")

	// Proto validation runs in-process; nothing to probe.
	log.Info().Msg("Proto toolchain OK (in-process)")
	return nil
}
