package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ppltrack/internal/service"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all set entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				_, err := app.Export.WriteCSV(context.Background(), os.Stdout)
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			rows, err := app.Export.WriteCSV(context.Background(), f)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d set entries to %s\n", rows, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", service.DefaultExportFileName, "Output file path ('-' for stdout)")

	return cmd
}
