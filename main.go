package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/javelin-build/javelin/cmd"
	"github.com/javelin-build/javelin/internal/logger"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type mainCmd struct {
	cmd.GlobalOptions

	Version   versionFlag `name:"version" help:"Print version information"`
	Verbosity int         `short:"v" type:"counter" help:"Increase verbosity"`
	Dir       string      `short:"C" help:"Change directory before running"`

	Init    cmd.InitCmd    `cmd:"" help:"Write a starter javelin.yaml"`
	Build   cmd.BuildCmd   `cmd:"" help:"Compile the selected targets"`
	Plan    cmd.PlanCmd    `cmd:"" help:"Print step invocations without running them"`
	Targets cmd.TargetsCmd `cmd:"" help:"List configured targets"`
	Doctor  cmd.DoctorCmd  `cmd:"" help:"Check toolchain availability"`
}

type versionFlag bool

func (v versionFlag) BeforeApply(app *kong.Kong) error {
	app.Stdout.Write([]byte("javelin " + version + " (" + commit + ") built on " + date + "\n"))
	os.Exit(0)
	return nil
}

func main() {
	// Setup logging
	log := logger.Init()

	// Context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithLogger(ctx, &log)

	// Signal handling
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		log.Warn().Msg("Interrupted, finishing up...")
		cancel()
	}()

	// Parse CLI
	var cli mainCmd
	parser := kong.Must(&cli,
		kong.Name("javelin"),
		kong.Description("A build step runner for Java compilation"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(&log, (*zerolog.Logger)(nil)),
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	// Set verbosity
	switch cli.Verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	// Change directory if requested
	if cli.Dir != "" {
		if err := os.Chdir(cli.Dir); err != nil {
			log.Fatal().Err(err).Str("dir", cli.Dir).Msg("Failed to change directory")
		}
	}

	// Run command
	err = kctx.Run(&cli.GlobalOptions, &log, ctx)
	kctx.FatalIfErrorf(err)
}
