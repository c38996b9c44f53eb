package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acrane/studium/internal/db"
	"github.com/acrane/studium/internal/domain"
)

// goalKey is the fixed settings key of the singleton goal record.
const goalKey = "goal"

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(db db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: db}
}

func (r *SQLiteGoalRepo) Get(ctx context.Context) (*domain.Goal, error) {
	query := `SELECT name, target_date, start_date FROM goal_settings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, goalKey)

	var g domain.Goal
	if err := row.Scan(&g.Name, &g.TargetDate, &g.StartDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return &g, nil
}

func (r *SQLiteGoalRepo) Upsert(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goal_settings (id, name, target_date, start_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET name = excluded.name, target_date = excluded.target_date, start_date = excluded.start_date`
	if _, err := r.db.ExecContext(ctx, query, goalKey, g.Name, g.TargetDate, g.StartDate); err != nil {
		return fmt.Errorf("upserting goal: %w", err)
	}
	return nil
}

// Delete removes the goal. An absent goal is not an error.
func (r *SQLiteGoalRepo) Delete(ctx context.Context) error {
	query := `DELETE FROM goal_settings WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, goalKey); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}
