package cli

import (
	"github.com/spf13/cobra"

	"ppltrack/internal/catalog"
	"ppltrack/internal/coaching"
	"ppltrack/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workouts    service.WorkoutService
	Reports     service.ReportService
	Checklist   service.ChecklistService
	Export      service.ExportService
	Preferences service.PreferencesService
	Coach       *coaching.Coach
	Catalog     *catalog.Catalog

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive-only surfaces (the session editor, prompts) are gated
	// on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ppltrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ppltrack",
		Short: "Push/pull/legs workout tracker",
	}

	root.AddCommand(
		newStartCmd(app),
		newOpenCmd(app),
		newSessionCmd(app),
		newSetCmd(app),
		newDashboardCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newChecklistCmd(app),
		newTemplateCmd(app),
		newTipCmd(app),
		newSuggestCmd(app),
		newConfigCmd(app),
	)

	return root
}
