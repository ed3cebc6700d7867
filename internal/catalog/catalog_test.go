package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LookupByID(t *testing.T) {
	c := Default()

	ex, ok := c.ExerciseByID("ex15")
	require.True(t, ok)
	assert.Equal(t, "Back Squats", ex.Name)
	assert.Equal(t, "Legs", ex.MuscleGroup)

	_, ok = c.ExerciseByID("ex999")
	assert.False(t, ok)
}

func TestMuscleGroup_UnknownFallback(t *testing.T) {
	c := Default()
	assert.Equal(t, "Chest", c.MuscleGroup("ex1"))
	assert.Equal(t, UnknownMuscleGroup, c.MuscleGroup("ex999"))
}

func TestTemplateForWeekday(t *testing.T) {
	c := Default()

	tpl, ok := c.TemplateForWeekday(time.Monday)
	require.True(t, ok)
	assert.Equal(t, "day1", tpl.ID)
	assert.Equal(t, "Push (Chest, Shoulders, Triceps)", tpl.Title)

	// Sunday is a rest day in the default split.
	_, ok = c.TemplateForWeekday(time.Sunday)
	assert.False(t, ok)
}

func TestTemplateTitle_Fallback(t *testing.T) {
	c := Default()
	assert.Equal(t, "Legs + Core", c.TemplateTitle("day3"))
	assert.Equal(t, "Custom Workout", c.TemplateTitle("deleted-template"))
}

func TestCatalog_TemplateExercisesResolve(t *testing.T) {
	c := Default()
	for _, tpl := range c.Templates() {
		for _, te := range tpl.Exercises {
			_, ok := c.ExerciseByID(te.ExerciseID)
			assert.True(t, ok, "template %s references unknown exercise %s", tpl.ID, te.ExerciseID)
			assert.Greater(t, te.DefaultSets, 0)
		}
	}
}
