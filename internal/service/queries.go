package service

import (
	"time"

	"github.com/acrane/studium/internal/domain"
	"github.com/acrane/studium/internal/stats"
)

// Derived queries. All of them are pure functions over the loaded snapshot:
// no storage access, safe to call once per render.

// TotalTimeForSubject sums logged seconds for one subject.
func (a *Aggregator) TotalTimeForSubject(subjectID string) int {
	return stats.TotalDurationBySubject(a.snap.Sessions, subjectID)
}

// TotalTimeForDate sums logged seconds on one calendar date.
func (a *Aggregator) TotalTimeForDate(date string) int {
	return stats.TotalDurationOnDate(a.snap.Sessions, date)
}

// Streak counts consecutive study days ending today or yesterday.
func (a *Aggregator) Streak() int {
	return stats.Streak(a.snap.Sessions, a.now())
}

// PeriodBreakdown group-sums session time by subject for sessions on or
// after windowStart, ordered by descending total.
func (a *Aggregator) PeriodBreakdown(windowStart string) []stats.SubjectTotal {
	return stats.PeriodBreakdown(a.snap.Sessions, windowStart)
}

// DailySeries returns a dense per-day total series for the trailing
// numDays window ending today.
func (a *Aggregator) DailySeries(numDays int) []stats.DayTotal {
	return stats.DailySeries(a.snap.Sessions, numDays, a.now())
}

// GoalProgress computes remaining/elapsed metrics for the loaded goal.
// Returns false when no goal is set; the caller renders a placeholder.
func (a *Aggregator) GoalProgress() (stats.ProgressResult, bool) {
	goal := a.snap.Goal
	if goal == nil {
		return stats.ProgressResult{}, false
	}
	start, err := domain.ParseDate(goal.StartDate)
	if err != nil {
		return stats.ProgressResult{}, false
	}
	target, err := domain.ParseDate(goal.TargetDate)
	if err != nil {
		return stats.ProgressResult{}, false
	}
	now := a.now()
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return stats.ComputeProgress(stats.ProgressInput{Start: start, Target: target, Now: nowDay}), true
}

// SubjectByID looks a subject up in the snapshot.
func (a *Aggregator) SubjectByID(id string) *domain.Subject {
	for _, s := range a.snap.Subjects {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// TasksForSubject filters the snapshot's tasks by subject.
func (a *Aggregator) TasksForSubject(subjectID string) []*domain.Task {
	var out []*domain.Task
	for _, t := range a.snap.Tasks {
		if t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out
}
