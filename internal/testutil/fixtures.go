package testutil

import (
	"time"

	"github.com/acrane/studium/internal/domain"
	"github.com/google/uuid"
)

// Subject options
type SubjectOption func(*domain.Subject)

func WithColor(c string) SubjectOption {
	return func(s *domain.Subject) {
		s.Color = c
	}
}

func WithSubjectCreatedAt(t time.Time) SubjectOption {
	return func(s *domain.Subject) {
		s.CreatedAt = t
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	s := &domain.Subject{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#83a598",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(subjectID, description string, opts ...TaskOption) *domain.Task {
	task := &domain.Task{
		ID:          uuid.New().String(),
		SubjectID:   subjectID,
		Description: description,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Session options
type SessionOption func(*domain.StudySession)

func WithWindow(start, end string) SessionOption {
	return func(s *domain.StudySession) {
		s.StartTime = start
		s.EndTime = end
	}
}

func WithDuration(sec int) SessionOption {
	return func(s *domain.StudySession) {
		s.DurationSec = sec
	}
}

// NewTestSession builds a one-hour session on the given date unless options
// override the window or duration.
func NewTestSession(subjectID, date string, opts ...SessionOption) *domain.StudySession {
	s := &domain.StudySession{
		ID:          uuid.New().String(),
		SubjectID:   subjectID,
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		DurationSec: 3600,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestGoal(name, targetDate, startDate string) *domain.Goal {
	return &domain.Goal{Name: name, TargetDate: targetDate, StartDate: startDate}
}
