package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newTipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tip EXERCISE",
		Short: "Get an AI form tip for an exercise",
		Long:  "Ask the coaching model for a short form cue. EXERCISE is a catalog id (ex1) or a name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := resolveExerciseName(app, strings.Join(args, " "))

			var spin *formatter.Spinner
			if app.IsInteractive != nil && app.IsInteractive() {
				spin = formatter.StartSpinner(os.Stderr, "Asking the coach...")
			}
			tip := app.Coach.ExerciseTip(context.Background(), name)
			if spin != nil {
				spin.Stop()
			}

			fmt.Print(formatter.RenderBox("Tip: "+name, tip))
			fmt.Println()
			return nil
		},
	}
}

// resolveExerciseName maps a catalog id to its display name, otherwise
// treats the input as a free-form exercise name.
func resolveExerciseName(app *App, ref string) string {
	if ex, ok := app.Catalog.ExerciseByID(ref); ok {
		return ex.Name
	}
	for _, ex := range app.Catalog.Exercises() {
		if strings.EqualFold(ex.Name, ref) {
			return ex.Name
		}
	}
	return ref
}
