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

// Tables carry no REFERENCES clauses on purpose: referential integrity,
// including cascade deletes, is owned by the aggregator so that a crash
// mid-cascade can only leave orphans, never dangling constraint state.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		subject_id  TEXT NOT NULL,
		description TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_subject ON tasks(subject_id)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id           TEXT PRIMARY KEY,
		subject_id   TEXT NOT NULL,
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		duration_sec INTEGER NOT NULL CHECK(duration_sec > 0),
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_subject ON study_sessions(subject_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON study_sessions(date)`,

	`CREATE TABLE IF NOT EXISTS goal_settings (
		id          TEXT PRIMARY KEY CHECK(id = 'goal'),
		name        TEXT NOT NULL,
		target_date TEXT NOT NULL,
		start_date  TEXT NOT NULL
	)`,
}
