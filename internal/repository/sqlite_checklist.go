package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ppltrack/internal/db"
	"ppltrack/internal/domain"
)

// SQLiteChecklistRepo implements ChecklistRepo using a SQLite database.
// Only one row exists at a time; the checklist for a new day replaces
// the previous day's wholesale.
type SQLiteChecklistRepo struct {
	db db.DBTX
}

// NewSQLiteChecklistRepo creates a new SQLiteChecklistRepo.
func NewSQLiteChecklistRepo(conn db.DBTX) *SQLiteChecklistRepo {
	return &SQLiteChecklistRepo{db: conn}
}

func (r *SQLiteChecklistRepo) Get(ctx context.Context) (*domain.DailyChecklist, error) {
	query := `SELECT date, water_ml, creatine_taken, fish_oil_taken, multivitamin_taken, water_logged
		FROM daily_checklist WHERE id = 'current'`
	row := r.db.QueryRowContext(ctx, query)

	var c domain.DailyChecklist
	var creatine, fishOil, multi, waterLogged int
	err := row.Scan(&c.Date, &c.WaterMl, &creatine, &fishOil, &multi, &waterLogged)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily checklist: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily checklist: %w", err)
	}
	c.CreatineTaken = intToBool(creatine)
	c.FishOilTaken = intToBool(fishOil)
	c.MultivitaminTaken = intToBool(multi)
	c.WaterLogged = intToBool(waterLogged)
	return &c, nil
}

func (r *SQLiteChecklistRepo) Upsert(ctx context.Context, c *domain.DailyChecklist) error {
	query := `INSERT OR REPLACE INTO daily_checklist
			(id, date, water_ml, creatine_taken, fish_oil_taken, multivitamin_taken, water_logged)
		VALUES ('current', ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.Date,
		c.WaterMl,
		boolToInt(c.CreatineTaken),
		boolToInt(c.FishOilTaken),
		boolToInt(c.MultivitaminTaken),
		boolToInt(c.WaterLogged),
	)
	if err != nil {
		return fmt.Errorf("upserting daily checklist: %w", err)
	}
	return nil
}
