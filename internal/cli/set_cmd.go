package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ppltrack/internal/cli/formatter"
	"ppltrack/internal/domain"
)

func newSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage set entries within a session",
	}

	cmd.AddCommand(
		newSetAddCmd(app),
		newSetUpdateCmd(app),
		newSetRemoveCmd(app),
	)

	return cmd
}

// parseRepsOrZero coerces free-form reps input. Malformed or negative
// input logs as zero instead of failing.
func parseRepsOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseWeightOrZero coerces free-form weight input the same way.
func parseWeightOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func newSetAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add SESSION EXERCISE",
		Short: "Append an empty set to an exercise",
		Args:  cobra.ExactArgs(2),
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
			exID, err := resolveExerciseID(s, args[1])
			if err != nil {
				return err
			}

			s, err = app.Workouts.AddSet(ctx, id, exID)
			if err != nil {
				return err
			}
			fmt.Printf("Added set to %s (%d sets)\n", exID, setCountFor(s, exID))
			return nil
		},
	}
}

func newSetUpdateCmd(app *App) *cobra.Command {
	var reps, weight string
	var completed bool

	cmd := &cobra.Command{
		Use:   "update SESSION EXERCISE SET",
		Short: "Update reps and weight on a set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected SESSION EXERCISE SET arguments")
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
			exID, err := resolveExerciseID(s, args[1])
			if err != nil {
				return err
			}
			setID, err := resolveSetID(s, exID, args[2])
			if err != nil {
				return err
			}

			var patch domain.SetPatch
			if cmd.Flags().Changed("reps") {
				r := parseRepsOrZero(reps)
				patch.Reps = &r
			}
			if cmd.Flags().Changed("weight") {
				w := parseWeightOrZero(weight)
				patch.Weight = &w
			}
			if cmd.Flags().Changed("done") {
				patch.IsCompleted = &completed
			}

			s, err = app.Workouts.UpdateSet(ctx, id, exID, setID, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated set. Session volume: %s\n",
				formatter.FormatVolume(s.ComputeTotalVolume(), string(s.Unit)))
			return nil
		},
	}

	cmd.Flags().StringVar(&reps, "reps", "", "Rep count (non-numeric or negative logs as 0)")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight (non-numeric or negative logs as 0)")
	cmd.Flags().BoolVar(&completed, "done", false, "Mark the set completed")

	return cmd
}

func newSetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SESSION EXERCISE SET",
		Short: "Remove a set from an exercise",
		Args:  cobra.ExactArgs(3),
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
			exID, err := resolveExerciseID(s, args[1])
			if err != nil {
				return err
			}
			setID, err := resolveSetID(s, exID, args[2])
			if err != nil {
				return err
			}

			s, err = app.Workouts.RemoveSet(ctx, id, exID, setID)
			if err != nil {
				return err
			}
			fmt.Printf("Removed set. Session volume: %s\n",
				formatter.FormatVolume(s.ComputeTotalVolume(), string(s.Unit)))
			return nil
		},
	}
}

func setCountFor(s *domain.Session, exerciseID string) int {
	for _, ex := range s.Exercises {
		if ex.ExerciseID == exerciseID {
			return len(ex.Sets)
		}
	}
	return 0
}
