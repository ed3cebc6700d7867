package catalog

import (
	"time"

	"ppltrack/internal/domain"
)

// UnknownMuscleGroup is reported for exercise ids that are not in the
// catalog, e.g. historical sessions referencing a removed exercise.
const UnknownMuscleGroup = "Unknown"

// Catalog is the immutable exercise and template reference table. Sessions
// copy what they need out of it at creation time; nothing here is ever
// mutated after construction.
type Catalog struct {
	exercises    []domain.Exercise
	exerciseByID map[string]domain.Exercise
	templates    []domain.WorkoutTemplate
	templateByID map[string]domain.WorkoutTemplate
	byWeekday    map[time.Weekday]domain.WorkoutTemplate
}

// Default returns the built-in PPL split catalog.
func Default() *Catalog {
	c := &Catalog{
		exercises:    defaultExercises,
		exerciseByID: make(map[string]domain.Exercise, len(defaultExercises)),
		templates:    defaultTemplates,
		templateByID: make(map[string]domain.WorkoutTemplate, len(defaultTemplates)),
		byWeekday:    make(map[time.Weekday]domain.WorkoutTemplate, len(defaultTemplates)),
	}
	for _, ex := range defaultExercises {
		c.exerciseByID[ex.ID] = ex
	}
	for _, t := range defaultTemplates {
		c.templateByID[t.ID] = t
		c.byWeekday[t.DayOfWeek] = t
	}
	return c
}

// Exercises returns all catalog exercises in definition order.
func (c *Catalog) Exercises() []domain.Exercise {
	return c.exercises
}

// ExerciseByID looks up a catalog exercise.
func (c *Catalog) ExerciseByID(id string) (domain.Exercise, bool) {
	ex, ok := c.exerciseByID[id]
	return ex, ok
}

// MuscleGroup returns the muscle group for an exercise id, or
// UnknownMuscleGroup when the id is not in the catalog.
func (c *Catalog) MuscleGroup(id string) string {
	if ex, ok := c.exerciseByID[id]; ok {
		return ex.MuscleGroup
	}
	return UnknownMuscleGroup
}

// Templates returns all workout templates in week order.
func (c *Catalog) Templates() []domain.WorkoutTemplate {
	return c.templates
}

// TemplateByID looks up a workout template.
func (c *Catalog) TemplateByID(id string) (domain.WorkoutTemplate, bool) {
	t, ok := c.templateByID[id]
	return t, ok
}

// TemplateForWeekday returns the template assigned to the given weekday.
// Rest days (Sunday in the default split) have no template.
func (c *Catalog) TemplateForWeekday(day time.Weekday) (domain.WorkoutTemplate, bool) {
	t, ok := c.byWeekday[day]
	return t, ok
}

// TemplateTitle resolves a template id to its title, falling back to
// "Custom Workout" for ids that no longer resolve. Used by history and
// export rendering.
func (c *Catalog) TemplateTitle(id string) string {
	if t, ok := c.templateByID[id]; ok {
		return t.Title
	}
	return "Custom Workout"
}
