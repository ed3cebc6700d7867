package testutil

import (
	"time"

	"github.com/google/uuid"

	"ppltrack/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithDate(date string) SessionOption {
	return func(s *domain.Session) {
		s.Date = date
	}
}

func WithTemplateID(id string) SessionOption {
	return func(s *domain.Session) {
		s.TemplateID = id
	}
}

func WithUnit(u domain.WeightUnit) SessionOption {
	return func(s *domain.Session) {
		s.Unit = u
	}
}

// WithCompletedAt marks the session completed at the given time and
// snapshots the current set volumes into TotalVolume.
func WithCompletedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Status = domain.SessionCompleted
		s.CompletedAt = &t
		s.SnapshotVolume()
	}
}

// WithExercise appends an exercise with the given sets. Each set's
// volume is derived from its reps and weight.
func WithExercise(exerciseID, name, muscleGroup string, sets ...domain.SetEntry) SessionOption {
	return func(s *domain.Session) {
		for i := range sets {
			if sets[i].ID == "" {
				sets[i].ID = uuid.New().String()
			}
			sets[i].Volume = float64(sets[i].Reps) * sets[i].Weight
		}
		s.Exercises = append(s.Exercises, domain.SessionExercise{
			ExerciseID:  exerciseID,
			Name:        name,
			MuscleGroup: muscleGroup,
			Sets:        sets,
		})
	}
}

// Set builds a completed SetEntry with consistent volume.
func Set(reps int, weight float64) domain.SetEntry {
	return domain.SetEntry{
		ID:          uuid.New().String(),
		Reps:        reps,
		Weight:      weight,
		Volume:      float64(reps) * weight,
		IsCompleted: true,
	}
}

// NewTestSession builds an in-progress push session dated today.
func NewTestSession(opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:         uuid.New().String(),
		Date:       now.Format("2006-01-02"),
		TemplateID: "day1",
		Unit:       domain.UnitKg,
		Status:     domain.SessionInProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.SnapshotVolume()
	return s
}

// NewTestChecklist builds a checklist for the given date.
func NewTestChecklist(date string) *domain.DailyChecklist {
	return domain.NewDailyChecklist(date)
}
