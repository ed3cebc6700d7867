package domain

import "time"

// SetEntry is a single logged set. Volume is derived from reps and weight
// and is never settable on its own: every mutation goes through
// Session.UpdateSet, which recomputes it in the same step.
type SetEntry struct {
	ID          string
	Reps        int
	Weight      float64
	Volume      float64
	IsCompleted bool
}

// SessionExercise is the per-session snapshot of a catalog exercise plus
// its ordered set entries. ExerciseID refers back to the catalog; Name and
// MuscleGroup are copied at session creation.
type SessionExercise struct {
	ExerciseID  string
	Name        string
	MuscleGroup string
	Sets        []SetEntry
}

// Session is one concrete occurrence of performing a template's exercises
// on a specific calendar date. It owns its exercises and sets exclusively.
type Session struct {
	ID          string
	Date        string // YYYY-MM-DD, local calendar day
	TemplateID  string
	Exercises   []SessionExercise
	TotalVolume float64 // persisted snapshot; see SnapshotVolume
	Unit        WeightUnit
	Status      SessionStatus
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetPatch is a partial update for a set entry. Nil fields are left as-is.
type SetPatch struct {
	Reps        *int
	Weight      *float64
	IsCompleted *bool
}

// AddSet appends a zeroed set entry with the given id to the named
// exercise. Returns ErrSessionCompleted once the session is finished.
func (s *Session) AddSet(exerciseID, setID string) (*SetEntry, error) {
	if s.Status == SessionCompleted {
		return nil, ErrSessionCompleted
	}
	ex := s.exercise(exerciseID)
	if ex == nil {
		return nil, ErrExerciseNotFound
	}
	ex.Sets = append(ex.Sets, SetEntry{ID: setID})
	return &ex.Sets[len(ex.Sets)-1], nil
}

// UpdateSet merges the patch into the named set and recomputes its volume.
// This is the only mutation path for reps and weight, so the invariant
// volume == reps * weight holds after every update.
func (s *Session) UpdateSet(exerciseID, setID string, patch SetPatch) error {
	if s.Status == SessionCompleted {
		return ErrSessionCompleted
	}
	ex := s.exercise(exerciseID)
	if ex == nil {
		return ErrExerciseNotFound
	}
	for i := range ex.Sets {
		if ex.Sets[i].ID != setID {
			continue
		}
		set := &ex.Sets[i]
		if patch.Reps != nil {
			set.Reps = *patch.Reps
		}
		if patch.Weight != nil {
			set.Weight = *patch.Weight
		}
		if patch.IsCompleted != nil {
			set.IsCompleted = *patch.IsCompleted
		}
		set.Volume = float64(set.Reps) * set.Weight
		return nil
	}
	return ErrSetNotFound
}

// RemoveSet deletes the named set from its exercise, preserving the order
// of the remaining sets.
func (s *Session) RemoveSet(exerciseID, setID string) error {
	if s.Status == SessionCompleted {
		return ErrSessionCompleted
	}
	ex := s.exercise(exerciseID)
	if ex == nil {
		return ErrExerciseNotFound
	}
	for i := range ex.Sets {
		if ex.Sets[i].ID == setID {
			ex.Sets = append(ex.Sets[:i], ex.Sets[i+1:]...)
			return nil
		}
	}
	return ErrSetNotFound
}

// ComputeTotalVolume sums set volumes across all exercises. The stored
// TotalVolume field is only refreshed at persistence boundaries; reads of
// a live session should use this.
func (s *Session) ComputeTotalVolume() float64 {
	var total float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			total += set.Volume
		}
	}
	return total
}

// SnapshotVolume stores the current computed total on the session. Called
// on save-and-exit and on finish.
func (s *Session) SnapshotVolume() {
	s.TotalVolume = s.ComputeTotalVolume()
}

// Finish snapshots the total volume, marks the session completed and
// stamps CompletedAt. There is no transition back out of completed.
func (s *Session) Finish(now time.Time) error {
	if s.Status == SessionCompleted {
		return ErrSessionCompleted
	}
	s.SnapshotVolume()
	s.Status = SessionCompleted
	s.CompletedAt = &now
	return nil
}

func (s *Session) exercise(exerciseID string) *SessionExercise {
	for i := range s.Exercises {
		if s.Exercises[i].ExerciseID == exerciseID {
			return &s.Exercises[i]
		}
	}
	return nil
}

// SetCount returns the total number of set entries across all exercises.
func (s *Session) SetCount() int {
	n := 0
	for _, ex := range s.Exercises {
		n += len(ex.Sets)
	}
	return n
}
