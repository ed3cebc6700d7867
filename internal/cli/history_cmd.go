package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Workouts.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No workout history yet. Start one with: ppltrack start")
				return nil
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}
			fmt.Print(formatter.RenderBox("History", renderSessionRows(app, sessions)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum sessions to show (0 for all)")

	return cmd
}
