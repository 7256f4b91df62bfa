package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jimezsa/jobboard/internal/cmd"
	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cli := cmd.NewCLI()
	versionString := buildVersion()

	parser, err := kong.New(cli,
		kong.Name("jobboard"),
		kong.Description("Browse, filter and post jobs on a job board."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		cmd.Vars(versionString),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fallbackUI := ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(os.Getenv("JOBBOARD_COLOR")), false)
		fallbackUI.Errorf("%v", err)
		os.Exit(1)
	}
	applyEnvDefaults(cli)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if apiURL := strings.TrimSpace(cli.APIURL); apiURL != "" {
		cfg.APIURL = apiURL
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	colorMode := ui.NormalizeColorMode(cli.Color)
	disableColor := cli.JSON || cli.Plain
	userInterface := ui.New(os.Stdout, os.Stderr, colorMode, disableColor)

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx := &cmd.Context{
		Ctx:        ctx,
		Out:        os.Stdout,
		Err:        os.Stderr,
		UI:         userInterface,
		Config:     cfg,
		ConfigDir:  configDir,
		Logger:     logger,
		Verbose:    cli.Verbose,
		JSONOutput: cli.JSON,
		PlainText:  cli.Plain,
		Version:    versionString,
		ColorMode:  colorMode,
	}

	if err := kctx.Run(runCtx); err != nil {
		userInterface.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func buildVersion() string {
	switch {
	case commit == "" && date == "":
		return version
	case commit == "":
		return fmt.Sprintf("%s (%s)", version, date)
	case date == "":
		return fmt.Sprintf("%s (%s)", version, commit)
	default:
		return fmt.Sprintf("%s (%s, %s)", version, commit, date)
	}
}

// applyEnvDefaults turns on boolean flags from the environment after parsing.
// JOBBOARD_COLOR is handled by the --color default in cmd.Vars.
func applyEnvDefaults(cli *cmd.CLI) {
	if config.EnvBool("JOBBOARD_JSON") {
		cli.JSON = true
	}
	if config.EnvBool("JOBBOARD_VERBOSE") {
		cli.Verbose = true
	}
}
