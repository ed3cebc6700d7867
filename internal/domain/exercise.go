package domain

import "time"

// Exercise is a catalog entry. Immutable reference data: sessions snapshot
// the name and muscle group at creation time so later catalog edits never
// rewrite history.
type Exercise struct {
	ID          string
	Name        string
	MuscleGroup string
}

// TemplateExercise is one slot in a workout template: which exercise to do
// and the default set/rep prescription.
type TemplateExercise struct {
	ExerciseID  string
	DefaultSets int
	DefaultReps string // display target, e.g. "8-10" or "Failure"
}

// WorkoutTemplate is a fixed weekday-to-workout assignment with an ordered
// exercise list.
type WorkoutTemplate struct {
	ID        string
	DayOfWeek time.Weekday
	Title     string
	Exercises []TemplateExercise
}
