package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage workout sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionSaveCmd(app),
		newSessionFinishCmd(app),
		newSessionRemoveCmd(app),
		newOpenCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workout sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []*domain.Session
			var err error
			if date != "" {
				sessions, err = app.Workouts.ListByDate(ctx, date)
			} else {
				sessions, err = app.Workouts.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			fmt.Print(formatter.RenderBox("Sessions", renderSessionRows(app, sessions)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only sessions on this date (YYYY-MM-DD)")

	return cmd
}

func renderSessionRows(app *App, sessions []*domain.Session) string {
	headers := []string{"ID", "DATE", "WORKOUT", "STATUS", "SETS", "VOLUME"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			formatter.TruncID(s.ID),
			s.Date,
			app.Catalog.TemplateTitle(s.TemplateID),
			formatter.StatusPill(s.Status),
			fmt.Sprintf("%d", s.SetCount()),
			formatter.FormatVolume(s.ComputeTotalVolume(), string(s.Unit)),
		})
	}
	return formatter.RenderTable(headers, rows)
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one session with all sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Workouts.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(renderSessionDetail(app, s))
			return nil
		},
	}
}

func renderSessionDetail(app *App, s *domain.Session) string {
	title := app.Catalog.TemplateTitle(s.TemplateID)
	head := fmt.Sprintf("%s  %s  %s\nTotal volume: %s\n\n",
		formatter.Bold(title),
		formatter.Dim(formatter.HumanDate(s.Date)),
		formatter.StatusPill(s.Status),
		formatter.FormatVolume(s.ComputeTotalVolume(), string(s.Unit)),
	)

	body := ""
	for i, ex := range s.Exercises {
		body += fmt.Sprintf("%d. %s %s\n", i+1, formatter.Bold(ex.Name), formatter.MuscleGroupBadge(ex.MuscleGroup))
		for j, set := range ex.Sets {
			body += fmt.Sprintf("   %s set %d: %d reps x %s = %s\n",
				formatter.CheckMark(set.IsCompleted),
				j+1,
				set.Reps,
				formatter.FormatWeight(set.Weight, string(s.Unit)),
				formatter.FormatVolume(set.Volume, string(s.Unit)),
			)
		}
	}

	return formatter.RenderBox("Session "+formatter.TruncID(s.ID), head+body)
}

func newSessionSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save ID",
		Short: "Snapshot a session's running total without finishing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Workouts.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Workouts.SaveProgress(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Saved %s: %s so far\n",
				app.Catalog.TemplateTitle(s.TemplateID),
				formatter.FormatVolume(s.TotalVolume, string(s.Unit)))
			return nil
		},
	}
}

func newSessionFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish ID",
		Short: "Finish a session and lock it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Workouts.Finish(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Finished %s: %s total volume\n",
				app.Catalog.TemplateTitle(s.TemplateID),
				formatter.FormatVolume(s.TotalVolume, string(s.Unit)))
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workouts.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
