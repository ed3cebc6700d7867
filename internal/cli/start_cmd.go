package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newStartCmd(app *App) *cobra.Command {
	var templateID, date string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a workout session",
		Long:  "Start a new session from a workout template. Without --template, today's scheduled template is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if templateID == "" && app.IsInteractive != nil && app.IsInteractive() {
				// On a rest day the weekday default fails, so offer a
				// picker instead of erroring out.
				if _, ok := app.Catalog.TemplateForWeekday(weekdayFor(date)); !ok {
					picked, err := pickTemplate(app)
					if err != nil {
						return err
					}
					templateID = picked
				}
			}

			s, err := app.Workouts.Start(ctx, templateID, date)
			if err != nil {
				return err
			}

			title := app.Catalog.TemplateTitle(s.TemplateID)
			fmt.Printf("Started %s on %s (%s)\n", formatter.Bold(title), formatter.HumanDate(s.Date), formatter.TruncID(s.ID))
			fmt.Printf("%d exercises prefilled. Log sets with:\n", len(s.Exercises))
			fmt.Printf("  ppltrack set update %s <exercise> <set> --reps N --weight W\n", formatter.TruncID(s.ID))
			fmt.Printf("  ppltrack open %s\n", formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "Workout template ID (e.g. day1)")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default today)")

	return cmd
}

func weekdayFor(date string) time.Weekday {
	if date == "" {
		return time.Now().Weekday()
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Now().Weekday()
	}
	return t.Weekday()
}

// pickTemplate shows an interactive template selector.
func pickTemplate(app *App) (string, error) {
	options := make([]huh.Option[string], 0)
	for _, t := range app.Catalog.Templates() {
		label := fmt.Sprintf("%s (%s)", t.Title, t.DayOfWeek)
		options = append(options, huh.NewOption(label, t.ID))
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a workout").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(pplHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}
