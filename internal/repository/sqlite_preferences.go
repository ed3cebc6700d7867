package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ppltrack/internal/db"
	"ppltrack/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	query := `SELECT id, unit, theme FROM preferences WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Preferences
	var unit, theme string
	err := row.Scan(&p.ID, &unit, &theme)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}
	p.Unit = domain.WeightUnit(unit)
	p.Theme = domain.Theme(theme)
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.Preferences) error {
	query := `INSERT OR REPLACE INTO preferences (id, unit, theme) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, p.ID, string(p.Unit), string(p.Theme))
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
