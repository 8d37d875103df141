package cli

import (
	"github.com/ascent-prep/ascent/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands, plus hooks the
// entrypoint wires for environment detection.
type App struct {
	Plans service.PlanService

	// IsInteractive reports whether stdin is attached to a terminal; it
	// gates the input form and the scrollable plan view.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ascent" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ascent",
		Short: "SAT study-schedule planner",
		Long: "Ascent turns a test date, current score, target score, and tutoring\n" +
			"frequency into a phased week-by-week study schedule with a feasibility\n" +
			"verdict.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlanCmd(app),
	)

	return root
}
