package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/acrane/studium/internal/db"
	"github.com/acrane/studium/internal/domain"
)

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(db db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: db}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	query := `INSERT INTO subjects (id, name, color, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Color,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	query := `SELECT id, name, color, created_at FROM subjects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Subject
	var createdAtStr string
	if err := row.Scan(&s.ID, &s.Name, &s.Color, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subject: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	return populateSubject(&s, createdAtStr)
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT id, name, color, created_at FROM subjects ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning subject row: %w", err)
		}
		subject, err := populateSubject(&s, createdAtStr)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLiteSubjectRepo) Update(ctx context.Context, s *domain.Subject) error {
	query := `UPDATE subjects SET name = ?, color = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Color, s.ID)
	if err != nil {
		return fmt.Errorf("updating subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("subject %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the subject. A missing id is not an error.
func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM subjects WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return nil
}

func populateSubject(s *domain.Subject, createdAtStr string) (*domain.Subject, error) {
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt
	return s, nil
}
