package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest TEMPLATE",
		Short: "Get an AI improvement suggestion for a workout",
		Long:  "Ask the coaching model for a progression suggestion based on your recent sessions of one template.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			templateID := args[0]
			if _, ok := app.Catalog.TemplateByID(templateID); !ok {
				return fmt.Errorf("unknown template %q", templateID)
			}

			all, err := app.Workouts.List(ctx)
			if err != nil {
				return err
			}
			var sessions []*domain.Session
			for _, s := range all {
				if s.TemplateID == templateID {
					sessions = append(sessions, s)
				}
			}
			if len(sessions) == 0 {
				fmt.Printf("No sessions recorded for %s yet.\n", app.Catalog.TemplateTitle(templateID))
				return nil
			}

			title := app.Catalog.TemplateTitle(templateID)

			var spin *formatter.Spinner
			if app.IsInteractive != nil && app.IsInteractive() {
				spin = formatter.StartSpinner(os.Stderr, "Analyzing your history...")
			}
			suggestion := app.Coach.ImprovementSuggestion(ctx, sessions, title)
			if spin != nil {
				spin.Stop()
			}

			fmt.Print(formatter.RenderBox("Suggestion: "+title, suggestion))
			fmt.Println()
			return nil
		},
	}
}
