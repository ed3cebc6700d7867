// Package analysis contains pure aggregation over workout sessions:
// volume sums, weekly bucketing, muscle group balance and per-template
// performance reports. Everything here is deterministic and side-effect
// free; persistence and presentation live elsewhere.
package analysis

import "ppltrack/internal/domain"

// SetVolume returns the training volume of a single set.
func SetVolume(s domain.SetEntry) float64 {
	return float64(s.Reps) * s.Weight
}

// ExerciseVolume sums the stored volumes of an exercise's sets.
func ExerciseVolume(ex domain.SessionExercise) float64 {
	var total float64
	for _, set := range ex.Sets {
		total += set.Volume
	}
	return total
}

// SessionVolume sums set volumes across all exercises of a session.
func SessionVolume(s *domain.Session) float64 {
	var total float64
	for _, ex := range s.Exercises {
		total += ExerciseVolume(ex)
	}
	return total
}
