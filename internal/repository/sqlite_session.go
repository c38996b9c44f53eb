package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/acrane/studium/internal/db"
	"github.com/acrane/studium/internal/domain"
)

const sessionColumns = `id, subject_id, date, start_time, end_time, duration_sec, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	query := `INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.SubjectID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.DurationSec,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions ORDER BY date, start_time, id`
	return r.querySessions(ctx, query)
}

func (r *SQLiteSessionRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM study_sessions WHERE subject_id = ? ORDER BY date, start_time, id`
	return r.querySessions(ctx, query, subjectID)
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, date string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM study_sessions WHERE date = ? ORDER BY start_time, id`
	return r.querySessions(ctx, query, date)
}

// Update rewrites every mutable field together; a session edit is a full
// replacement, never a partial patch.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.StudySession) error {
	query := `UPDATE study_sessions
		SET subject_id = ?, date = ?, start_time = ?, end_time = ?, duration_sec = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.SubjectID, s.Date, s.StartTime, s.EndTime, s.DurationSec, s.ID)
	if err != nil {
		return fmt.Errorf("updating study session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("study session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the session. A missing id is not an error.
func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM study_sessions WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteBySubject(ctx context.Context, subjectID string) error {
	query := `DELETE FROM study_sessions WHERE subject_id = ?`
	if _, err := r.db.ExecContext(ctx, query, subjectID); err != nil {
		return fmt.Errorf("deleting study sessions by subject: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.StudySession, error) {
	var s domain.StudySession
	var createdAtStr string
	err := row.Scan(
		&s.ID, &s.SubjectID, &s.Date, &s.StartTime, &s.EndTime, &s.DurationSec, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}
	return populateSession(&s, createdAtStr)
}

func (r *SQLiteSessionRepo) querySessions(ctx context.Context, query string, args ...any) ([]*domain.StudySession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing study sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var createdAtStr string
		err := rows.Scan(
			&s.ID, &s.SubjectID, &s.Date, &s.StartTime, &s.EndTime, &s.DurationSec, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, createdAtStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func populateSession(s *domain.StudySession, createdAtStr string) (*domain.StudySession, error) {
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.CreatedAt = createdAt
	return s, nil
}
