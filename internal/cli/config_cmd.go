package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(context.Background())
			if err != nil {
				return err
			}
			body := fmt.Sprintf("Unit   %s\nTheme  %s\n", formatter.Bold(string(p.Unit)), formatter.Bold(string(p.Theme)))
			fmt.Print(formatter.RenderBox("Preferences", body))
			return nil
		},
	}

	cmd.AddCommand(
		newConfigUnitCmd(app),
		newConfigThemeCmd(app),
	)

	return cmd
}

func newConfigUnitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unit VALUE",
		Short: "Set the weight unit (kg or lbs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.SetUnit(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Weight unit set to %s\n", p.Unit)
			return nil
		},
	}
}

func newConfigThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme VALUE",
		Short: "Set the color theme (light or dark)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.SetTheme(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", p.Theme)
			return nil
		},
	}
}
