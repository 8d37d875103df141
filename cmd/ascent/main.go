package main

import (
	"fmt"
	"os"

	"github.com/ascent-prep/ascent/internal/cli"
	"github.com/ascent-prep/ascent/internal/planner"
	"github.com/ascent-prep/ascent/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Generation telemetry goes to stderr when ASCENT_LOG is set.
	var observer service.GenerationObserver = service.NoopObserver{}
	if os.Getenv("ASCENT_LOG") != "" {
		observer = service.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Plans: service.NewPlanService(planner.DefaultConfig(), observer),
	}

	// Detect interactive terminal for the input form and plan pager.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
