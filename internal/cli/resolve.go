package cli

import (
	"context"
	"fmt"
	"strings"

	"ppltrack/internal/domain"
)

// resolveSessionID accepts either a full session UUID or a unique prefix
// (as printed by the list views) and resolves it to the stored ID.
func resolveSessionID(ctx context.Context, app *App, ref string) (string, error) {
	if _, err := app.Workouts.GetByID(ctx, ref); err == nil {
		return ref, nil
	}

	sessions, err := app.Workouts.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no session matches %q", ref)
	default:
		return "", fmt.Errorf("session prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// resolveExerciseID accepts a session exercise reference: the exercise id
// (e.g. ex1) or its 1-based position within the session.
func resolveExerciseID(s *domain.Session, ref string) (string, error) {
	for _, ex := range s.Exercises {
		if ex.ExerciseID == ref {
			return ex.ExerciseID, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil && idx >= 1 && idx <= len(s.Exercises) {
		return s.Exercises[idx-1].ExerciseID, nil
	}
	return "", fmt.Errorf("no exercise %q in session", ref)
}

// resolveSetID accepts a set reference within an exercise: the set entry
// id or its 1-based position.
func resolveSetID(s *domain.Session, exerciseID, ref string) (string, error) {
	for _, ex := range s.Exercises {
		if ex.ExerciseID != exerciseID {
			continue
		}
		for _, set := range ex.Sets {
			if set.ID == ref {
				return set.ID, nil
			}
		}
		// A short numeric reference is a 1-based position, never a prefix.
		var idx int
		if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil && idx >= 1 && idx <= len(ex.Sets) {
			return ex.Sets[idx-1].ID, nil
		}
		for _, set := range ex.Sets {
			if len(ref) >= 4 && strings.HasPrefix(set.ID, ref) {
				return set.ID, nil
			}
		}
	}
	return "", fmt.Errorf("no set %q for exercise %s", ref, exerciseID)
}
