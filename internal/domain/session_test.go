package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBenchSession() *Session {
	return &Session{
		ID:         "s1",
		Date:       "2025-08-04",
		TemplateID: "day1",
		Unit:       UnitKg,
		Status:     SessionInProgress,
		Exercises: []SessionExercise{
			{ExerciseID: "ex1", Name: "Flat Barbell Bench Press", MuscleGroup: "Chest", Sets: []SetEntry{
				{ID: "set1"},
				{ID: "set2"},
			}},
		},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestUpdateSet_RecomputesVolume(t *testing.T) {
	s := newBenchSession()

	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(10), Weight: floatPtr(20)}))
	assert.Equal(t, 200.0, s.Exercises[0].Sets[0].Volume)

	// Partial patch: only reps changes, volume still tracks both operands.
	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(5)}))
	assert.Equal(t, 100.0, s.Exercises[0].Sets[0].Volume, "volume must never go stale after a partial update")

	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{IsCompleted: boolPtr(true)}))
	assert.Equal(t, 100.0, s.Exercises[0].Sets[0].Volume)
	assert.True(t, s.Exercises[0].Sets[0].IsCompleted)
}

func TestUpdateSet_ZeroOperandsYieldZeroVolume(t *testing.T) {
	s := newBenchSession()
	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(0), Weight: floatPtr(80)}))
	assert.Equal(t, 0.0, s.Exercises[0].Sets[0].Volume)
}

func TestComputeTotalVolume_SumsAcrossSets(t *testing.T) {
	s := newBenchSession()
	// Two sets: 10x20 and 8x25 — both 200, session total 400.
	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(10), Weight: floatPtr(20)}))
	require.NoError(t, s.UpdateSet("ex1", "set2", SetPatch{Reps: intPtr(8), Weight: floatPtr(25)}))

	assert.Equal(t, 400.0, s.ComputeTotalVolume())

	s.SnapshotVolume()
	assert.Equal(t, 400.0, s.TotalVolume)
}

func TestAddSet_AppendsZeroedEntry(t *testing.T) {
	s := newBenchSession()
	set, err := s.AddSet("ex1", "set3")
	require.NoError(t, err)
	assert.Equal(t, "set3", set.ID)
	assert.Zero(t, set.Reps)
	assert.Zero(t, set.Weight)
	assert.Zero(t, set.Volume)
	assert.False(t, set.IsCompleted)
	assert.Len(t, s.Exercises[0].Sets, 3)
}

func TestRemoveSet_PreservesOrder(t *testing.T) {
	s := newBenchSession()
	_, err := s.AddSet("ex1", "set3")
	require.NoError(t, err)

	require.NoError(t, s.RemoveSet("ex1", "set2"))
	ids := []string{s.Exercises[0].Sets[0].ID, s.Exercises[0].Sets[1].ID}
	assert.Equal(t, []string{"set1", "set3"}, ids)

	assert.ErrorIs(t, s.RemoveSet("ex1", "set2"), ErrSetNotFound)
	assert.ErrorIs(t, s.RemoveSet("ex9", "set1"), ErrExerciseNotFound)
}

func TestFinish_LocksSession(t *testing.T) {
	s := newBenchSession()
	require.NoError(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(10), Weight: floatPtr(20)}))

	now := time.Date(2025, 8, 4, 18, 30, 0, 0, time.UTC)
	require.NoError(t, s.Finish(now))

	assert.Equal(t, SessionCompleted, s.Status)
	require.NotNil(t, s.CompletedAt)
	assert.Equal(t, now, *s.CompletedAt)
	assert.Equal(t, 200.0, s.TotalVolume)

	// No transition out of completed, and no further mutation.
	assert.ErrorIs(t, s.Finish(now.Add(time.Hour)), ErrSessionCompleted)
	assert.ErrorIs(t, s.UpdateSet("ex1", "set1", SetPatch{Reps: intPtr(12)}), ErrSessionCompleted)
	_, err := s.AddSet("ex1", "set9")
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, s.RemoveSet("ex1", "set1"), ErrSessionCompleted)
}

func TestToggleSupplement(t *testing.T) {
	c := NewDailyChecklist("2025-08-04")
	assert.True(t, c.ToggleSupplement(SupplementCreatine))
	assert.True(t, c.CreatineTaken)
	assert.True(t, c.ToggleSupplement(SupplementCreatine))
	assert.False(t, c.CreatineTaken)
	assert.False(t, c.ToggleSupplement(Supplement("caffeine")))
}
