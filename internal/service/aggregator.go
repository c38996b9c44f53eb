package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acrane/studium/internal/db"
	"github.com/acrane/studium/internal/domain"
	"github.com/acrane/studium/internal/repository"
	"github.com/google/uuid"
)

// Snapshot is the in-memory view of all four collections. Reads are served
// from the snapshot; every successful mutation commits to storage first and
// then reloads, so the next read observes its own write.
type Snapshot struct {
	Subjects []*domain.Subject
	Tasks    []*domain.Task
	Sessions []*domain.StudySession
	Goal     *domain.Goal // nil when no goal is set
}

// Aggregator owns the loaded domain state and all write paths. It is the
// single component that enforces referential integrity: the record store
// has no foreign keys, so cascade deletes are sequenced here,
// children before parent.
//
// All methods run on one logical thread of control; callers serialize
// mutations (the CLI runs one command at a time, the TUI one event at a
// time).
type Aggregator struct {
	subjects repository.SubjectRepo
	tasks    repository.TaskRepo
	sessions repository.SessionRepo
	goal     repository.GoalRepo
	uow      db.UnitOfWork
	observer MutationObserver
	now      func() time.Time

	snap      Snapshot
	listeners []func()
}

// AggregatorOption customizes an Aggregator.
type AggregatorOption func(*Aggregator)

// WithClock replaces the wall clock, used by tests for deterministic dates.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithObserver attaches a mutation observer.
func WithObserver(o MutationObserver) AggregatorOption {
	return func(a *Aggregator) {
		if o != nil {
			a.observer = o
		}
	}
}

// NewAggregator wires the aggregator to its repositories. Call LoadAll once
// after construction to populate the snapshot.
func NewAggregator(
	subjects repository.SubjectRepo,
	tasks repository.TaskRepo,
	sessions repository.SessionRepo,
	goal repository.GoalRepo,
	uow db.UnitOfWork,
	opts ...AggregatorOption,
) *Aggregator {
	a := &Aggregator{
		subjects: subjects,
		tasks:    tasks,
		sessions: sessions,
		goal:     goal,
		uow:      uow,
		observer: NoopMutationObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe registers a callback invoked after every successful mutation,
// once the snapshot has been reloaded. The presentation layer uses it to
// re-render.
func (a *Aggregator) Subscribe(fn func()) {
	if fn != nil {
		a.listeners = append(a.listeners, fn)
	}
}

// LoadAll refreshes the snapshot from storage. On failure the previous
// snapshot stays visible: stale data beats a crash for a local-only store.
func (a *Aggregator) LoadAll(ctx context.Context) error {
	subjects, err := a.subjects.List(ctx)
	if err != nil {
		return fmt.Errorf("loading subjects: %w", err)
	}
	tasks, err := a.tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	sessions, err := a.sessions.List(ctx)
	if err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}
	goal, err := a.goal.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading goal: %w", err)
	}

	a.snap = Snapshot{Subjects: subjects, Tasks: tasks, Sessions: sessions, Goal: goal}
	return nil
}

// Snapshot returns the current in-memory view. Callers must treat it as
// read-only.
func (a *Aggregator) Snapshot() Snapshot {
	return a.snap
}

// UpsertSubject creates a subject when id is empty, otherwise edits name
// and color while preserving the original CreatedAt.
func (a *Aggregator) UpsertSubject(ctx context.Context, id, name, color string) (*domain.Subject, error) {
	var subject *domain.Subject
	err := a.mutate(ctx, "upsert_subject", map[string]any{"subject_id": id}, func() error {
		s := &domain.Subject{ID: id, Name: strings.TrimSpace(name), Color: color}
		if err := s.Validate(); err != nil {
			return err
		}

		if s.ID == "" {
			s.ID = uuid.New().String()
			s.CreatedAt = a.now().UTC().Truncate(time.Second)
			if err := a.subjects.Create(ctx, s); err != nil {
				return err
			}
		} else {
			existing, err := a.subjects.GetByID(ctx, s.ID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: subject %s does not exist", domain.ErrInvalid, s.ID)
				}
				return err
			}
			s.CreatedAt = existing.CreatedAt
			if err := a.subjects.Update(ctx, s); err != nil {
				return err
			}
		}
		subject = s
		return nil
	})
	return subject, err
}

// DeleteSubject removes the subject and everything referencing it. Tasks
// and sessions go first so that an interrupted cascade can only leave
// orphans, never a child referencing a resurrected id.
func (a *Aggregator) DeleteSubject(ctx context.Context, id string) error {
	return a.mutate(ctx, "delete_subject", map[string]any{"subject_id": id}, func() error {
		return a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txTasks := repository.NewSQLiteTaskRepo(tx)
			txSessions := repository.NewSQLiteSessionRepo(tx)
			txSubjects := repository.NewSQLiteSubjectRepo(tx)

			if err := txTasks.DeleteBySubject(ctx, id); err != nil {
				return err
			}
			if err := txSessions.DeleteBySubject(ctx, id); err != nil {
				return err
			}
			return txSubjects.Delete(ctx, id)
		})
	})
}

// UpsertTask creates a task when id is empty, otherwise rewrites its
// description. The subject of an existing task is never reassigned.
func (a *Aggregator) UpsertTask(ctx context.Context, id, subjectID, description string) (*domain.Task, error) {
	var task *domain.Task
	err := a.mutate(ctx, "upsert_task", map[string]any{"task_id": id}, func() error {
		t := &domain.Task{ID: id, SubjectID: subjectID, Description: strings.TrimSpace(description)}

		if t.ID == "" {
			if err := t.Validate(); err != nil {
				return err
			}
			if err := a.requireSubject(ctx, t.SubjectID); err != nil {
				return err
			}
			t.ID = uuid.New().String()
			t.CreatedAt = a.now().UTC().Truncate(time.Second)
			if err := a.tasks.Create(ctx, t); err != nil {
				return err
			}
		} else {
			existing, err := a.tasks.GetByID(ctx, t.ID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: task %s does not exist", domain.ErrInvalid, t.ID)
				}
				return err
			}
			existing.Description = t.Description
			if err := existing.Validate(); err != nil {
				return err
			}
			if err := a.tasks.Update(ctx, existing); err != nil {
				return err
			}
			t = existing
		}
		task = t
		return nil
	})
	return task, err
}

// ToggleTask flips the completed flag with a read-modify-write of the full
// record. Toggling a task deleted underneath us is a validation error:
// there is nothing to mutate.
func (a *Aggregator) ToggleTask(ctx context.Context, id string) error {
	return a.mutate(ctx, "toggle_task", map[string]any{"task_id": id}, func() error {
		task, err := a.tasks.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: task %s does not exist", domain.ErrInvalid, id)
			}
			return err
		}
		task.Completed = !task.Completed
		return a.tasks.Update(ctx, task)
	})
}

// DeleteTask removes a task. Deleting a missing id succeeds.
func (a *Aggregator) DeleteTask(ctx context.Context, id string) error {
	return a.mutate(ctx, "delete_task", map[string]any{"task_id": id}, func() error {
		return a.tasks.Delete(ctx, id)
	})
}

// UpsertSession records a manually entered session. Duration is computed
// from the start/end clock readings anchored on date; a window of zero or
// negative length is rejected before anything is written.
func (a *Aggregator) UpsertSession(ctx context.Context, id, subjectID, date, startTime, endTime string) (*domain.StudySession, error) {
	var session *domain.StudySession
	err := a.mutate(ctx, "upsert_session", map[string]any{"session_id": id}, func() error {
		durationSec, err := domain.SessionWindowSeconds(startTime, endTime)
		if err != nil {
			return err
		}
		if durationSec <= 0 {
			return fmt.Errorf("%w: session must end after it starts", domain.ErrInvalid)
		}

		s := &domain.StudySession{
			ID:          id,
			SubjectID:   subjectID,
			Date:        date,
			StartTime:   startTime,
			EndTime:     endTime,
			DurationSec: durationSec,
		}
		if err := s.Validate(); err != nil {
			return err
		}

		if s.ID == "" {
			if err := a.requireSubject(ctx, s.SubjectID); err != nil {
				return err
			}
			s.ID = uuid.New().String()
			s.CreatedAt = a.now().UTC().Truncate(time.Second)
			if err := a.sessions.Create(ctx, s); err != nil {
				return err
			}
		} else {
			existing, err := a.sessions.GetByID(ctx, s.ID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: session %s does not exist", domain.ErrInvalid, s.ID)
				}
				return err
			}
			s.CreatedAt = existing.CreatedAt
			if err := a.sessions.Update(ctx, s); err != nil {
				return err
			}
		}
		session = s
		return nil
	})
	return session, err
}

// LogTimedSession records a session committed by the timer engine. Here the
// measured duration is authoritative and the clock strings are derived
// snapshots of the commit window, so sub-minute drift between the two is
// expected.
func (a *Aggregator) LogTimedSession(ctx context.Context, subjectID string, endedAt time.Time, durationSec int) (*domain.StudySession, error) {
	var session *domain.StudySession
	err := a.mutate(ctx, "log_timed_session", map[string]any{"subject_id": subjectID}, func() error {
		if durationSec <= 0 {
			return fmt.Errorf("%w: timed session duration must be positive", domain.ErrInvalid)
		}
		if err := a.requireSubject(ctx, subjectID); err != nil {
			return err
		}

		startedAt := endedAt.Add(-time.Duration(durationSec) * time.Second)
		s := &domain.StudySession{
			ID:          uuid.New().String(),
			SubjectID:   subjectID,
			Date:        domain.DateOf(endedAt),
			StartTime:   domain.ClockOf(startedAt),
			EndTime:     domain.ClockOf(endedAt),
			DurationSec: durationSec,
			CreatedAt:   a.now().UTC().Truncate(time.Second),
		}
		if err := a.sessions.Create(ctx, s); err != nil {
			return err
		}
		session = s
		return nil
	})
	return session, err
}

// DeleteSession removes a session. Deleting a missing id succeeds.
func (a *Aggregator) DeleteSession(ctx context.Context, id string) error {
	return a.mutate(ctx, "delete_session", map[string]any{"session_id": id}, func() error {
		return a.sessions.Delete(ctx, id)
	})
}

// SetGoal replaces the singleton goal. startDate defaults to today when
// empty.
func (a *Aggregator) SetGoal(ctx context.Context, name, targetDate, startDate string) (*domain.Goal, error) {
	var goal *domain.Goal
	err := a.mutate(ctx, "set_goal", map[string]any{"goal": name}, func() error {
		if startDate == "" {
			startDate = domain.DateOf(a.now())
		}
		g := &domain.Goal{Name: strings.TrimSpace(name), TargetDate: targetDate, StartDate: startDate}
		if err := g.Validate(); err != nil {
			return err
		}
		if err := a.goal.Upsert(ctx, g); err != nil {
			return err
		}
		goal = g
		return nil
	})
	return goal, err
}

// ResetGoal deletes the goal record. Resetting an absent goal succeeds.
func (a *Aggregator) ResetGoal(ctx context.Context) error {
	return a.mutate(ctx, "reset_goal", nil, func() error {
		return a.goal.Delete(ctx)
	})
}

// requireSubject rejects writes that would dangle a reference to a subject
// that is not there.
func (a *Aggregator) requireSubject(ctx context.Context, id string) error {
	if _, err := a.subjects.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: subject %s does not exist", domain.ErrInvalid, id)
		}
		return err
	}
	return nil
}

// mutate runs one mutation: commit, reload, notify. The snapshot is only
// touched after the write succeeded, so a failed mutation leaves reads on
// the last good state.
func (a *Aggregator) mutate(ctx context.Context, name string, fields map[string]any, fn func() error) error {
	started := a.now()
	err := fn()
	if err == nil {
		if loadErr := a.LoadAll(ctx); loadErr != nil {
			// The write landed; losing the reload only means a stale view.
			a.observer.ObserveMutation(ctx, MutationEvent{
				Name: name + "_reload", StartedAt: started, Duration: a.now().Sub(started),
				Success: false, Err: loadErr, Fields: fields,
			})
		}
		for _, fn := range a.listeners {
			fn()
		}
	}

	a.observer.ObserveMutation(ctx, MutationEvent{
		Name:      name,
		StartedAt: started,
		Duration:  a.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
	return err
}
