// Package stats derives analytics from the raw session log. Every function
// is pure: the aggregator passes its in-memory snapshot in and renders the
// result, so repeated calls without an intervening mutation are identical.
package stats

import (
	"sort"
	"time"

	"github.com/acrane/studium/internal/domain"
)

// SubjectTotal is one row of a period breakdown.
type SubjectTotal struct {
	SubjectID string
	TotalSec  int
}

// DayTotal is one bucket of a daily series.
type DayTotal struct {
	Date     string
	TotalSec int
}

// TotalDurationBySubject sums session durations for one subject.
func TotalDurationBySubject(sessions []*domain.StudySession, subjectID string) int {
	total := 0
	for _, s := range sessions {
		if s.SubjectID == subjectID {
			total += s.DurationSec
		}
	}
	return total
}

// TotalDurationOnDate sums session durations on one calendar date.
func TotalDurationOnDate(sessions []*domain.StudySession, date string) int {
	total := 0
	for _, s := range sessions {
		if s.Date == date {
			total += s.DurationSec
		}
	}
	return total
}

// Streak counts consecutive study days ending at today or yesterday.
// A gap of more than one day between today and the latest session breaks
// the streak to zero; otherwise the walk starts at today and moves one day
// back at a time, so a yesterday-only streak still reads as 1 today.
func Streak(sessions []*domain.StudySession, today time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	dates := make(map[string]bool, len(sessions))
	latest := ""
	for _, s := range sessions {
		dates[s.Date] = true
		if s.Date > latest {
			latest = s.Date
		}
	}

	latestDay, err := domain.ParseDate(latest)
	if err != nil {
		return 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Sub(latestDay) > 24*time.Hour {
		return 0
	}

	// Nothing logged today yet is fine: the walk then starts at yesterday,
	// which the gap check above guarantees is the latest study day.
	if !dates[domain.DateOf(day)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for dates[domain.DateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// PeriodBreakdown filters sessions on or after windowStart, group-sums
// durations by subject and returns rows sorted by descending total. Ties
// keep the original encounter order.
func PeriodBreakdown(sessions []*domain.StudySession, windowStart string) []SubjectTotal {
	totals := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if s.Date < windowStart {
			continue
		}
		if _, seen := totals[s.SubjectID]; !seen {
			order = append(order, s.SubjectID)
		}
		totals[s.SubjectID] += s.DurationSec
	}

	rows := make([]SubjectTotal, 0, len(order))
	for _, id := range order {
		rows = append(rows, SubjectTotal{SubjectID: id, TotalSec: totals[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSec > rows[j].TotalSec
	})
	return rows
}

// DailySeries produces exactly numDays buckets for the trailing window
// ending at now inclusive. Days without sessions stay at zero, so the
// series is dense, never sparse.
func DailySeries(sessions []*domain.StudySession, numDays int, now time.Time) []DayTotal {
	if numDays <= 0 {
		return nil
	}

	series := make([]DayTotal, numDays)
	index := make(map[string]int, numDays)
	for i := 0; i < numDays; i++ {
		date := domain.DateOf(now.AddDate(0, 0, i-numDays+1))
		series[i] = DayTotal{Date: date}
		index[date] = i
	}

	for _, s := range sessions {
		if i, ok := index[s.Date]; ok {
			series[i].TotalSec += s.DurationSec
		}
	}
	return series
}
