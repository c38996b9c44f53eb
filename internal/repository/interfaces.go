package repository

import (
	"context"

	"github.com/acrane/studium/internal/domain"
)

// The four collections of the record store. Each operation is individually
// atomic; there are no cross-collection transactions here. Multi-record
// sequencing (cascade deletes) belongs to the aggregator, which composes
// tx-scoped repositories through db.UnitOfWork when it needs atomicity.

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteBySubject(ctx context.Context, subjectID string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	List(ctx context.Context) ([]*domain.StudySession, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudySession, error)
	ListByDate(ctx context.Context, date string) ([]*domain.StudySession, error)
	Update(ctx context.Context, s *domain.StudySession) error
	Delete(ctx context.Context, id string) error
	DeleteBySubject(ctx context.Context, subjectID string) error
}

// GoalRepo manages the singleton goal record, keyed by a fixed settings key.
type GoalRepo interface {
	Get(ctx context.Context) (*domain.Goal, error)
	Upsert(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context) error
}
