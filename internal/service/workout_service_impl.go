package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ppltrack/internal/catalog"
	"ppltrack/internal/db"
	"ppltrack/internal/domain"
	"ppltrack/internal/repository"
)

type workoutService struct {
	sessions    repository.SessionRepo
	preferences repository.PreferencesRepo
	catalog     *catalog.Catalog
	uow         db.UnitOfWork
	now         func() time.Time
}

func NewWorkoutService(sessions repository.SessionRepo, preferences repository.PreferencesRepo, cat *catalog.Catalog, uow db.UnitOfWork) WorkoutService {
	return &workoutService{
		sessions:    sessions,
		preferences: preferences,
		catalog:     cat,
		uow:         uow,
		now:         time.Now,
	}
}

// Start creates an in-progress session for the given template and date.
// An empty templateID resolves to the date's weekday template; an empty
// date means today. Multiple sessions per date are allowed.
func (s *workoutService) Start(ctx context.Context, templateID, date string) (*domain.Session, error) {
	now := s.now().UTC()

	day := now
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", date, err)
		}
		day = parsed
	}

	var tmpl domain.WorkoutTemplate
	if templateID == "" {
		t, ok := s.catalog.TemplateForWeekday(day.Weekday())
		if !ok {
			return nil, fmt.Errorf("%s is a rest day, pass a template explicitly", day.Weekday())
		}
		tmpl = t
	} else {
		t, ok := s.catalog.TemplateByID(templateID)
		if !ok {
			return nil, fmt.Errorf("unknown template %q", templateID)
		}
		tmpl = t
	}

	prefs, err := s.preferences.Get(ctx)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:         uuid.New().String(),
		Date:       day.Format("2006-01-02"),
		TemplateID: tmpl.ID,
		Unit:       prefs.Unit,
		Status:     domain.SessionInProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, te := range tmpl.Exercises {
		ex, ok := s.catalog.ExerciseByID(te.ExerciseID)
		if !ok {
			// Stale template reference; skip rather than fail the whole start.
			continue
		}
		sets := make([]domain.SetEntry, te.DefaultSets)
		for i := range sets {
			sets[i] = domain.SetEntry{ID: uuid.New().String()}
		}
		session.Exercises = append(session.Exercises, domain.SessionExercise{
			ExerciseID:  ex.ID,
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        sets,
		})
	}

	if err := s.createTx(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *workoutService) createTx(ctx context.Context, session *domain.Session) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, session)
	})
}

func (s *workoutService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *workoutService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *workoutService) ListByDate(ctx context.Context, date string) ([]*domain.Session, error) {
	return s.sessions.ListByDate(ctx, date)
}

func (s *workoutService) AddSet(ctx context.Context, sessionID, exerciseID string) (*domain.Session, error) {
	return s.mutate(ctx, sessionID, func(session *domain.Session) error {
		_, err := session.AddSet(exerciseID, uuid.New().String())
		return err
	})
}

func (s *workoutService) UpdateSet(ctx context.Context, sessionID, exerciseID, setID string, patch domain.SetPatch) (*domain.Session, error) {
	clampPatch(&patch)
	return s.mutate(ctx, sessionID, func(session *domain.Session) error {
		return session.UpdateSet(exerciseID, setID, patch)
	})
}

func (s *workoutService) RemoveSet(ctx context.Context, sessionID, exerciseID, setID string) (*domain.Session, error) {
	return s.mutate(ctx, sessionID, func(session *domain.Session) error {
		return session.RemoveSet(exerciseID, setID)
	})
}

// SaveProgress persists the caller's in-memory session state, snapshotting
// the total volume. Used by the interactive editor's save-and-exit.
func (s *workoutService) SaveProgress(ctx context.Context, session *domain.Session) error {
	if session.Status == domain.SessionCompleted {
		return domain.ErrSessionCompleted
	}
	session.SnapshotVolume()
	session.UpdatedAt = s.now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Update(ctx, session)
	})
}

func (s *workoutService) Finish(ctx context.Context, sessionID string) (*domain.Session, error) {
	now := s.now().UTC()
	return s.mutate(ctx, sessionID, func(session *domain.Session) error {
		return session.Finish(now)
	})
}

func (s *workoutService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).Delete(ctx, id)
	})
}

// mutate loads the session, applies fn and persists the result in one
// transaction. The total volume snapshot is refreshed on every write.
func (s *workoutService) mutate(ctx context.Context, sessionID string, fn func(*domain.Session) error) (*domain.Session, error) {
	var out *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		session.SnapshotVolume()
		session.UpdatedAt = s.now().UTC()
		if err := repo.Update(ctx, session); err != nil {
			return err
		}
		out = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// clampPatch coerces negative reps and weight to zero. Malformed input
// never errors at this layer; it degrades to an empty set.
func clampPatch(patch *domain.SetPatch) {
	if patch.Reps != nil && *patch.Reps < 0 {
		zero := 0
		patch.Reps = &zero
	}
	if patch.Weight != nil && *patch.Weight < 0 {
		zero := 0.0
		patch.Weight = &zero
	}
}
