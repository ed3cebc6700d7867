package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		template_id  TEXT NOT NULL,
		unit         TEXT NOT NULL DEFAULT 'kg'
		             CHECK(unit IN ('kg','lbs')),
		status       TEXT NOT NULL DEFAULT 'in-progress'
		             CHECK(status IN ('in-progress','completed')),
		total_volume REAL NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_template ON sessions(template_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_completed ON sessions(completed_at)`,

	`CREATE TABLE IF NOT EXISTS session_exercises (
		session_id   TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		exercise_id  TEXT NOT NULL,
		name         TEXT NOT NULL,
		muscle_group TEXT NOT NULL,
		order_index  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (session_id, exercise_id)
	)`,

	`CREATE TABLE IF NOT EXISTS set_entries (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL,
		exercise_id  TEXT NOT NULL,
		order_index  INTEGER NOT NULL DEFAULT 0,
		reps         INTEGER NOT NULL DEFAULT 0,
		weight       REAL NOT NULL DEFAULT 0,
		volume       REAL NOT NULL DEFAULT 0,
		is_completed INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (session_id, exercise_id)
			REFERENCES session_exercises(session_id, exercise_id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_set_entries_session ON set_entries(session_id)`,

	`CREATE TABLE IF NOT EXISTS daily_checklist (
		id                 TEXT PRIMARY KEY DEFAULT 'current',
		date               TEXT NOT NULL,
		water_ml           INTEGER NOT NULL DEFAULT 0,
		creatine_taken     INTEGER NOT NULL DEFAULT 0,
		fish_oil_taken     INTEGER NOT NULL DEFAULT 0,
		multivitamin_taken INTEGER NOT NULL DEFAULT 0,
		water_logged       INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id    TEXT PRIMARY KEY DEFAULT 'default',
		unit  TEXT NOT NULL DEFAULT 'kg'
		      CHECK(unit IN ('kg','lbs')),
		theme TEXT NOT NULL DEFAULT 'dark'
		      CHECK(theme IN ('light','dark'))
	)`,

	// Seed default preferences
	`INSERT OR IGNORE INTO preferences (id) VALUES ('default')`,
}
