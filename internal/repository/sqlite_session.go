package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ppltrack/internal/db"
	"ppltrack/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// A session is an aggregate across three tables (sessions,
// session_exercises, set_entries); writes that touch more than one
// table should run inside a UnitOfWork transaction.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, date, template_id, unit, status, total_volume,
		completed_at, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, date, template_id, unit, status, total_volume,
			completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Date,
		s.TemplateID,
		string(s.Unit),
		string(s.Status),
		s.TotalVolume,
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return r.insertExercises(ctx, s)
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadExercises(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update rewrites the whole aggregate: the session row is updated in
// place and the exercise and set rows are replaced wholesale. The
// delete cascades to set_entries.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET date = ?, template_id = ?, unit = ?, status = ?,
			total_volume = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Date,
		s.TemplateID,
		string(s.Unit),
		string(s.Status),
		s.TotalVolume,
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session: %w", ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM session_exercises WHERE session_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing session exercises: %w", err)
	}
	return r.insertExercises(ctx, s)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanAndLoadSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) ListByTemplate(ctx context.Context, templateID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE template_id = ? ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by template: %w", err)
	}
	defer rows.Close()
	return r.scanAndLoadSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, date string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE date = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by date: %w", err)
	}
	defer rows.Close()
	return r.scanAndLoadSessions(ctx, rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// insertExercises writes the exercise and set rows for a session.
// Callers must have cleared any existing rows first.
func (r *SQLiteSessionRepo) insertExercises(ctx context.Context, s *domain.Session) error {
	exQuery := `INSERT INTO session_exercises (session_id, exercise_id, name, muscle_group, order_index)
		VALUES (?, ?, ?, ?, ?)`
	setQuery := `INSERT INTO set_entries (id, session_id, exercise_id, order_index, reps, weight, volume, is_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for i, ex := range s.Exercises {
		if _, err := r.db.ExecContext(ctx, exQuery,
			s.ID, ex.ExerciseID, ex.Name, ex.MuscleGroup, i,
		); err != nil {
			return fmt.Errorf("inserting session exercise %s: %w", ex.ExerciseID, err)
		}
		for j, set := range ex.Sets {
			if _, err := r.db.ExecContext(ctx, setQuery,
				set.ID, s.ID, ex.ExerciseID, j,
				set.Reps, set.Weight, set.Volume, boolToInt(set.IsCompleted),
			); err != nil {
				return fmt.Errorf("inserting set entry %s: %w", set.ID, err)
			}
		}
	}
	return nil
}

// loadExercises populates s.Exercises with their sets, preserving insertion order.
func (r *SQLiteSessionRepo) loadExercises(ctx context.Context, s *domain.Session) error {
	exQuery := `SELECT exercise_id, name, muscle_group FROM session_exercises
		WHERE session_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, exQuery, s.ID)
	if err != nil {
		return fmt.Errorf("loading session exercises: %w", err)
	}
	defer rows.Close()

	s.Exercises = nil
	for rows.Next() {
		var ex domain.SessionExercise
		if err := rows.Scan(&ex.ExerciseID, &ex.Name, &ex.MuscleGroup); err != nil {
			return fmt.Errorf("scanning session exercise: %w", err)
		}
		s.Exercises = append(s.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session exercises: %w", err)
	}

	setQuery := `SELECT exercise_id, id, reps, weight, volume, is_completed
		FROM set_entries WHERE session_id = ? ORDER BY exercise_id, order_index`
	setRows, err := r.db.QueryContext(ctx, setQuery, s.ID)
	if err != nil {
		return fmt.Errorf("loading set entries: %w", err)
	}
	defer setRows.Close()

	byExercise := make(map[string][]domain.SetEntry)
	for setRows.Next() {
		var exerciseID string
		var set domain.SetEntry
		var completed int
		if err := setRows.Scan(&exerciseID, &set.ID, &set.Reps, &set.Weight, &set.Volume, &completed); err != nil {
			return fmt.Errorf("scanning set entry: %w", err)
		}
		set.IsCompleted = intToBool(completed)
		byExercise[exerciseID] = append(byExercise[exerciseID], set)
	}
	if err := setRows.Err(); err != nil {
		return fmt.Errorf("iterating set entries: %w", err)
	}

	for i := range s.Exercises {
		s.Exercises[i].Sets = byExercise[s.Exercises[i].ExerciseID]
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var unit, status, createdAtStr, updatedAtStr string
	var completedAt sql.NullString

	err := row.Scan(
		&s.ID, &s.Date, &s.TemplateID, &unit, &status, &s.TotalVolume,
		&completedAt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return r.populateSession(&s, unit, status, completedAt, createdAtStr, updatedAtStr)
}

// scanAndLoadSessions scans session rows and loads each aggregate's exercises.
func (r *SQLiteSessionRepo) scanAndLoadSessions(ctx context.Context, rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var unit, status, createdAtStr, updatedAtStr string
		var completedAt sql.NullString

		err := rows.Scan(
			&s.ID, &s.Date, &s.TemplateID, &unit, &status, &s.TotalVolume,
			&completedAt, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, unit, status, completedAt, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	for _, s := range sessions {
		if err := r.loadExercises(ctx, s); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a Session after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, unit, status string, completedAt sql.NullString, createdAtStr, updatedAtStr string) (*domain.Session, error) {
	s.Unit = domain.WeightUnit(unit)
	s.Status = domain.SessionStatus(status)
	s.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
