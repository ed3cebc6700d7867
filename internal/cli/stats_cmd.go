package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats TEMPLATE",
		Short: "Per-exercise statistics for one workout template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.TemplateReport(context.Background(), args[0])
			if err != nil {
				return err
			}

			title := app.Catalog.TemplateTitle(args[0])
			if report.SessionCount == 0 {
				fmt.Printf("No sessions recorded for %s yet.\n", title)
				return nil
			}

			prefs, err := app.Preferences.Get(context.Background())
			if err != nil {
				return err
			}
			unit := string(prefs.Unit)

			head := fmt.Sprintf("%d sessions, avg volume %s\n\n",
				report.SessionCount,
				formatter.FormatVolume(report.AvgVolume, unit))

			headers := []string{"EXERCISE", "SETS", "REPS", "MAX WT", "AVG REPS", "AVG WT"}
			rows := make([][]string, 0, len(report.Exercises))
			for _, ex := range report.Exercises {
				rows = append(rows, []string{
					ex.Name,
					strconv.Itoa(ex.TotalSets),
					strconv.Itoa(ex.TotalReps),
					formatter.FormatWeight(ex.MaxWeight, unit),
					fmt.Sprintf("%.1f", ex.AvgReps),
					formatter.FormatWeight(ex.AvgWeight, unit),
				})
			}

			fmt.Print(formatter.RenderBox(title, head+formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
