package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse the workout split",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateTodayCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workout templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"ID", "DAY", "WORKOUT", "EXERCISES"}
			templates := app.Catalog.Templates()
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{
					t.ID,
					t.DayOfWeek.String(),
					t.Title,
					fmt.Sprintf("%d", len(t.Exercises)),
				})
			}
			fmt.Print(formatter.RenderBox("Templates", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one template's exercise list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := app.Catalog.TemplateByID(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			fmt.Print(renderTemplate(app, t))
			return nil
		},
	}
}

func newTemplateTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's scheduled workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := app.Catalog.TemplateForWeekday(time.Now().Weekday())
			if !ok {
				fmt.Println("Rest day. No workout scheduled for today.")
				return nil
			}
			fmt.Print(renderTemplate(app, t))
			return nil
		},
	}
}

func renderTemplate(app *App, t domain.WorkoutTemplate) string {
	body := fmt.Sprintf("%s on %s\n\n", formatter.Bold(t.Title), t.DayOfWeek)
	for i, te := range t.Exercises {
		ex, ok := app.Catalog.ExerciseByID(te.ExerciseID)
		name := te.ExerciseID
		group := ""
		if ok {
			name = ex.Name
			group = " " + formatter.MuscleGroupBadge(ex.MuscleGroup)
		}
		body += fmt.Sprintf("%d. %s%s  %s\n", i+1, name, group,
			formatter.Dim(fmt.Sprintf("%d x %s", te.DefaultSets, te.DefaultReps)))
	}
	return formatter.RenderBox("Template "+t.ID, body)
}
