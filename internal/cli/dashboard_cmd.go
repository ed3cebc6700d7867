package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the 28-day training overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Reports.Overview(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Coach's Insight"))
			fmt.Println(ov.Insight)
			fmt.Println()

			if len(ov.Weekly) > 0 {
				labels := make([]string, len(ov.Weekly))
				values := make([]float64, len(ov.Weekly))
				for i, w := range ov.Weekly {
					labels[i] = w.Label
					values[i] = w.Volume
				}
				fmt.Println(formatter.Header("Weekly Volume (last 28 days)"))
				fmt.Print(formatter.RenderBarChart(labels, values, 30))
				fmt.Println()
			}

			if len(ov.Balance) > 0 {
				labels := make([]string, len(ov.Balance))
				percents := make([]float64, len(ov.Balance))
				for i, b := range ov.Balance {
					labels[i] = b.Label
					percents[i] = float64(b.Percent)
				}
				fmt.Println(formatter.Header("Muscle Balance"))
				fmt.Print(formatter.RenderBalanceBars(labels, percents, 25))
			}

			return nil
		},
	}
}
