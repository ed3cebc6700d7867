package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Daily water and supplement checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Checklist.Today(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(renderChecklist(c))
			return nil
		},
	}

	cmd.AddCommand(
		newChecklistWaterCmd(app),
		newChecklistLogWaterCmd(app),
		newChecklistSupplementCmd(app),
	)

	return cmd
}

func renderChecklist(c *domain.DailyChecklist) string {
	body := fmt.Sprintf("Water  %s  %d / %d ml\n\n",
		formatter.RenderProgress(c.WaterMl, domain.WaterGoalMl, 20),
		c.WaterMl, domain.WaterGoalMl)
	body += fmt.Sprintf("%s Creatine\n", formatter.CheckMark(c.CreatineTaken))
	body += fmt.Sprintf("%s Fish Oil\n", formatter.CheckMark(c.FishOilTaken))
	body += fmt.Sprintf("%s Multivitamin\n", formatter.CheckMark(c.MultivitaminTaken))
	body += fmt.Sprintf("%s Water logged today\n", formatter.CheckMark(c.WaterLogged))

	return formatter.RenderBox("Checklist "+formatter.HumanDate(c.Date), body)
}

func newChecklistWaterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water [GLASSES]",
		Short: "Add or remove 500ml glasses of water",
		Long:  "Adjust water intake in 500ml glasses. Positive adds, negative removes. Defaults to +1.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			delta := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("glasses must be an integer: %q", args[0])
				}
				delta = n
			}

			c, err := app.Checklist.Today(ctx)
			if err != nil {
				return err
			}
			c, err = app.Checklist.SetWater(ctx, c.WaterMl+delta*domain.GlassMl)
			if err != nil {
				return err
			}
			fmt.Print(renderChecklist(c))
			return nil
		},
	}
	return cmd
}

func newChecklistLogWaterCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "log-water",
		Short: "Mark today's water intake as logged",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var c *domain.DailyChecklist
			var err error
			if undo {
				c, err = app.Checklist.UnlogWater(ctx)
			} else {
				c, err = app.Checklist.MarkWaterLogged(ctx)
			}
			if err != nil {
				return err
			}
			if !undo && !c.WaterLogged {
				fmt.Println("Nothing to log: water intake is still at 0 ml.")
				return nil
			}
			fmt.Print(renderChecklist(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the logged flag instead")

	return cmd
}

func newChecklistSupplementCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "supplement NAME",
		Short: "Toggle a supplement (creatine, fish-oil, multivitamin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Checklist.ToggleSupplement(context.Background(), domain.Supplement(args[0]))
			if err != nil {
				return err
			}
			fmt.Print(renderChecklist(c))
			return nil
		},
	}
}
