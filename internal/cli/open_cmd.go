package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open ID",
		Short: "Open a session in the interactive editor",
		Long:  "Open an in-progress session in a full-screen editor for logging sets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("the session editor needs an interactive terminal; use 'ppltrack set' commands instead")
			}

			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Workouts.GetByID(ctx, id)
			if err != nil {
				return err
			}

			model := newSessionModel(app, s)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("session editor: %w", err)
			}

			s, err = app.Workouts.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s: %s total volume\n",
				formatter.StatusPill(s.Status),
				app.Catalog.TemplateTitle(s.TemplateID),
				formatter.FormatVolume(s.ComputeTotalVolume(), string(s.Unit)))
			return nil
		},
	}
}
