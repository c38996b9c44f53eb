package stats

import (
	"testing"
	"time"

	"github.com/acrane/studium/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(subjectID, date string, durationSec int) *domain.StudySession {
	return &domain.StudySession{
		ID:          subjectID + "-" + date,
		SubjectID:   subjectID,
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		DurationSec: durationSec,
	}
}

func day(date string) time.Time {
	t, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalDurationBySubject(t *testing.T) {
	sessions := []*domain.StudySession{
		session("math", "2024-01-10", 1800),
		session("math", "2024-01-11", 1200),
		session("history", "2024-01-10", 900),
	}

	assert.Equal(t, 3000, TotalDurationBySubject(sessions, "math"))
	assert.Equal(t, 900, TotalDurationBySubject(sessions, "history"))
	assert.Equal(t, 0, TotalDurationBySubject(sessions, "physics"))

	// Pure: a second call without mutation returns the same value.
	assert.Equal(t, 3000, TotalDurationBySubject(sessions, "math"))
}

func TestTotalDurationOnDate(t *testing.T) {
	sessions := []*domain.StudySession{
		session("math", "2024-01-10", 1800),
		session("history", "2024-01-10", 900),
		session("math", "2024-01-11", 1200),
	}

	assert.Equal(t, 2700, TotalDurationOnDate(sessions, "2024-01-10"))
	assert.Equal(t, 0, TotalDurationOnDate(sessions, "2024-01-09"))
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{name: "empty log", dates: nil, today: "2024-01-12", want: 0},
		{name: "three consecutive days ending today", dates: []string{"2024-01-10", "2024-01-11", "2024-01-12"}, today: "2024-01-12", want: 3},
		{name: "two day gap breaks streak", dates: []string{"2024-01-10", "2024-01-11", "2024-01-12"}, today: "2024-01-14", want: 0},
		{name: "yesterday only still counts", dates: []string{"2024-01-11"}, today: "2024-01-12", want: 1},
		{name: "run ending yesterday", dates: []string{"2024-01-09", "2024-01-10", "2024-01-11"}, today: "2024-01-12", want: 3},
		{name: "hole limits the walk", dates: []string{"2024-01-08", "2024-01-10", "2024-01-11", "2024-01-12"}, today: "2024-01-12", want: 3},
		{name: "single day today", dates: []string{"2024-01-12"}, today: "2024-01-12", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []*domain.StudySession
			for _, d := range tt.dates {
				sessions = append(sessions, session("math", d, 600))
			}
			assert.Equal(t, tt.want, Streak(sessions, day(tt.today)))
		})
	}
}

func TestStreakDuplicateDatesCountOnce(t *testing.T) {
	sessions := []*domain.StudySession{
		session("math", "2024-01-11", 600),
		session("history", "2024-01-11", 900),
		session("math", "2024-01-12", 600),
	}
	assert.Equal(t, 2, Streak(sessions, day("2024-01-12")))
}

func TestPeriodBreakdown(t *testing.T) {
	sessions := []*domain.StudySession{
		session("math", "2024-01-08", 600),
		session("history", "2024-01-10", 3600),
		session("math", "2024-01-11", 1200),
		session("physics", "2024-01-12", 1200),
	}

	rows := PeriodBreakdown(sessions, "2024-01-10")
	require.Len(t, rows, 3, "the pre-window math session is excluded")

	assert.Equal(t, SubjectTotal{SubjectID: "history", TotalSec: 3600}, rows[0])
	// math and physics tie at 1200; math was encountered first.
	assert.Equal(t, SubjectTotal{SubjectID: "math", TotalSec: 1200}, rows[1])
	assert.Equal(t, SubjectTotal{SubjectID: "physics", TotalSec: 1200}, rows[2])
}

func TestPeriodBreakdownEmptyWindow(t *testing.T) {
	sessions := []*domain.StudySession{session("math", "2024-01-08", 600)}
	assert.Empty(t, PeriodBreakdown(sessions, "2024-02-01"))
}

func TestDailySeriesIsDense(t *testing.T) {
	sessions := []*domain.StudySession{
		session("math", "2024-01-10", 1800),
		session("math", "2024-01-12", 600),
		session("history", "2024-01-12", 300),
		session("math", "2023-12-01", 9999), // outside the window
	}

	series := DailySeries(sessions, 7, day("2024-01-12"))
	require.Len(t, series, 7)

	assert.Equal(t, "2024-01-06", series[0].Date)
	assert.Equal(t, "2024-01-12", series[6].Date)

	byDate := make(map[string]int)
	for _, b := range series {
		byDate[b.Date] = b.TotalSec
	}
	assert.Equal(t, 1800, byDate["2024-01-10"])
	assert.Equal(t, 900, byDate["2024-01-12"])
	assert.Equal(t, 0, byDate["2024-01-11"], "missing days stay zero")
}

func TestDailySeriesZeroDays(t *testing.T) {
	assert.Nil(t, DailySeries(nil, 0, day("2024-01-12")))
}
