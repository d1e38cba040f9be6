package cli

import (
	"github.com/dhlim/plancycle/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against.
type App struct {
	Schedule service.ScheduleService

	// IsInteractive reports whether stdin is a terminal; the wizard
	// refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "plancycle" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "plancycle",
		Short: "Study/review timetable generator",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShowCmd(app),
		newWizardCmd(app),
	)

	return root
}
